// Package ws pushes queue change events to websocket clients. Clients
// subscribe to one cabinet or to all of them and re-fetch the snapshot when
// told something changed.
package ws

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	log "github.com/sirupsen/logrus"

	"arcade_queue/internal/events"
)

// topicAll receives every event regardless of cabinet.
const topicAll = "all"

// Hub keeps client connections grouped by topic.
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan events.Event
	done       chan struct{}
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan events.Event, 64),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.Topic] == nil {
				h.clients[client.Topic] = make(map[*Client]bool)
			}
			h.clients[client.Topic][client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()
		case e := <-h.broadcast:
			h.fanOut(e)
		}
	}
}

// Register adds a client. It reports false once the hub has stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Deliver queues e for broadcast. It satisfies events.Sink and never blocks
// the caller: when the hub is saturated the event is dropped, clients will
// pick the change up on their next poll.
func (h *Hub) Deliver(e events.Event) {
	select {
	case h.broadcast <- e:
	default:
		log.WithField("event_type", e.Type).Warn("ws hub saturated, dropping event")
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

func (h *Hub) fanOut(e events.Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		log.WithError(err).Error("encode ws event")
		return
	}

	topics := []string{topicAll}
	if len(e.CabinetIDs) == 0 {
		h.mu.RLock()
		for topic := range h.clients {
			if topic != topicAll {
				topics = append(topics, topic)
			}
		}
		h.mu.RUnlock()
	}
	seen := make(map[uint]bool, len(e.CabinetIDs))
	for _, id := range e.CabinetIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		topics = append(topics, cabinetTopic(id))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, topic := range topics {
		for client := range h.clients[topic] {
			select {
			case client.Send <- payload:
			default:
				// Slow consumer: drop it rather than stall the hub.
				h.remove(client)
			}
		}
	}
}

// remove must be called with h.mu held.
func (h *Hub) remove(client *Client) {
	clients, ok := h.clients[client.Topic]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.clients, client.Topic)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, clients := range h.clients {
		for client := range clients {
			h.remove(client)
		}
	}
}

func cabinetTopic(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
