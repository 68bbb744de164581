package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	mu     sync.Mutex
	events []Event
}

func (c *collector) Deliver(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *collector) snapshot() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

type failingPublisher struct{ calls int }

func (f *failingPublisher) Publish(context.Context, Event) error {
	f.calls++
	return errors.New("broker down")
}

func TestBus_NotifyDeliversLocally(t *testing.T) {
	sink := &collector{}
	bus := NewBus(sink)

	bus.Notify(context.Background(), "entry_cycled", 3)

	got := sink.snapshot()
	require.Len(t, got, 1)
	assert.Equal(t, "entry_cycled", got[0].Type)
	assert.Equal(t, []uint{3}, got[0].CabinetIDs)
	assert.Equal(t, bus.InstanceID(), got[0].Origin)
	assert.NotEmpty(t, got[0].ID)
	assert.False(t, got[0].At.IsZero())
}

func TestBus_PublishFailureDoesNotBlockDelivery(t *testing.T) {
	sink := &collector{}
	bus := NewBus()
	bus.AddSink(sink)
	pub := &failingPublisher{}
	bus.SetPublisher(pub)

	bus.Notify(context.Background(), "entry_created", 1)

	assert.Equal(t, 1, pub.calls)
	assert.Len(t, sink.snapshot(), 1)
}

func TestEvent_Touches(t *testing.T) {
	assert.True(t, Event{CabinetIDs: []uint{1, 2}}.Touches(2))
	assert.False(t, Event{CabinetIDs: []uint{1, 2}}.Touches(3))
	assert.True(t, Event{}.Touches(42), "cabinet-less events concern everyone")
}

func TestRedisRelay_CrossInstance(t *testing.T) {
	mr := miniredis.RunT(t)
	const channel = "arcade_queue:test"

	newClient := func() *redis.Client {
		c := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { c.Close() })
		return c
	}

	sinkA, sinkB := &collector{}, &collector{}
	busA, busB := NewBus(sinkA), NewBus(sinkB)
	relayA := NewRedisRelay(newClient(), channel, busA.InstanceID())
	relayB := NewRedisRelay(newClient(), channel, busB.InstanceID())
	busA.SetPublisher(relayA)
	busB.SetPublisher(relayB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var wg sync.WaitGroup
	for _, pair := range []struct {
		relay *RedisRelay
		bus   *Bus
	}{{relayA, busA}, {relayB, busB}} {
		wg.Add(1)
		go func(r *RedisRelay, b *Bus) {
			defer wg.Done()
			assert.NoError(t, r.Run(ctx, b.Deliver))
		}(pair.relay, pair.bus)
	}

	require.Eventually(t, func() bool {
		return mr.PubSubNumSub(channel)[channel] == 2
	}, 2*time.Second, 10*time.Millisecond)

	busA.Notify(ctx, "entry_moved", 1, 2)

	require.Eventually(t, func() bool { return len(sinkB.snapshot()) == 1 }, 2*time.Second, 10*time.Millisecond)
	got := sinkB.snapshot()[0]
	assert.Equal(t, "entry_moved", got.Type)
	assert.Equal(t, []uint{1, 2}, got.CabinetIDs)
	assert.Equal(t, busA.InstanceID(), got.Origin)

	// A hears its own event once, locally, never echoed back by the relay.
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, sinkA.snapshot(), 1)

	cancel()
	wg.Wait()
}
