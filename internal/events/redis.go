package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// RedisRelay carries events between instances over a redis pub/sub channel.
type RedisRelay struct {
	client     *redis.Client
	channel    string
	instanceID string
}

func NewRedisRelay(client *redis.Client, channel, instanceID string) *RedisRelay {
	return &RedisRelay{client: client, channel: channel, instanceID: instanceID}
}

func (r *RedisRelay) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	return r.client.Publish(ctx, r.channel, payload).Err()
}

// Run subscribes to the channel and hands every event raised by another
// instance to deliver. It returns when ctx is done.
func (r *RedisRelay) Run(ctx context.Context, deliver func(Event)) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	// Wait for the subscription to be confirmed before reading.
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", r.channel, err)
	}
	log.Infof("relaying queue events over redis channel %s", r.channel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var e Event
			if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
				log.WithError(err).Warn("dropping malformed queue event")
				continue
			}
			if e.Origin == r.instanceID {
				continue
			}
			deliver(e)
		}
	}
}
