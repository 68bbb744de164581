// Package events fans queue changes out to live listeners, locally and,
// when a relay is attached, to other server instances.
package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"event_type"`
	CabinetIDs []uint    `json:"cabinet_ids,omitempty"`
	Origin     string    `json:"origin"`
	At         time.Time `json:"at"`
}

// Touches reports whether the event concerns cabinetID. Events without
// cabinet ids (a global reset) concern every cabinet.
func (e Event) Touches(cabinetID uint) bool {
	if len(e.CabinetIDs) == 0 {
		return true
	}
	for _, id := range e.CabinetIDs {
		if id == cabinetID {
			return true
		}
	}
	return false
}

// Sink receives events delivered on this instance.
type Sink interface {
	Deliver(Event)
}

// Publisher forwards locally raised events to other instances.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

type Bus struct {
	instanceID string

	mu        sync.RWMutex
	sinks     []Sink
	publisher Publisher
}

func NewBus(sinks ...Sink) *Bus {
	return &Bus{
		instanceID: uuid.NewString(),
		sinks:      sinks,
	}
}

func (b *Bus) InstanceID() string {
	return b.instanceID
}

func (b *Bus) AddSink(s Sink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sinks = append(b.sinks, s)
}

func (b *Bus) SetPublisher(p Publisher) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.publisher = p
}

// Notify builds an event and delivers it. It satisfies queue.Notifier.
// Publishing failures are logged; the mutation that raised the event has
// already been committed.
func (b *Bus) Notify(ctx context.Context, kind string, cabinetIDs ...uint) {
	e := Event{
		ID:         uuid.NewString(),
		Type:       kind,
		CabinetIDs: cabinetIDs,
		Origin:     b.instanceID,
		At:         time.Now().UTC(),
	}
	b.Deliver(e)

	b.mu.RLock()
	p := b.publisher
	b.mu.RUnlock()
	if p == nil {
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		log.WithError(err).WithField("event_type", kind).Warn("failed to publish queue event")
	}
}

// Deliver hands e to every local sink.
func (b *Bus) Deliver(e Event) {
	b.mu.RLock()
	sinks := append([]Sink(nil), b.sinks...)
	b.mu.RUnlock()
	for _, s := range sinks {
		s.Deliver(e)
	}
}
