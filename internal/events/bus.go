package events

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultBuffer is the per-subscriber buffer when none is given.
const DefaultBuffer = 64

// Subscription is one consumer's buffered view of the bus.
type Subscription struct {
	id       string
	events   chan Event
	done     chan struct{}
	doneOnce sync.Once
	bus      *Bus
}

// ID returns the subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Events returns the channel to receive events from.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Done closes when the subscription is cancelled.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Drain returns every event buffered right now without blocking.
// Used by the frame loop, which polls instead of selecting.
func (s *Subscription) Drain() []Event {
	var out []Event
	for {
		select {
		case evt := <-s.events:
			out = append(out, evt)
		default:
			return out
		}
	}
}

// Close detaches the subscription from the bus. Safe to call multiple times.
func (s *Subscription) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
		s.bus.remove(s.id)
	})
}

// send delivers evt, dropping the oldest buffered event when full.
func (s *Subscription) send(evt Event) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.events <- evt:
	default:
		select {
		case <-s.events:
		default:
		}
		select {
		case s.events <- evt:
		default:
		}
	}
}

// Bus fans events out to every subscriber. Publish never blocks: slow
// subscribers lose their oldest events.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]*Subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]*Subscription)}
}

// Subscribe registers a consumer with the given buffer size.
func (b *Bus) Subscribe(buffer int) *Subscription {
	if buffer < 1 {
		buffer = DefaultBuffer
	}
	s := &Subscription{
		id:     uuid.NewString(),
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
		bus:    b,
	}

	b.mu.Lock()
	b.subs[s.id] = s
	b.mu.Unlock()
	return s
}

// Publish implements Sink.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.subs {
		s.send(evt)
	}
}

// Len returns the number of subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close cancels every subscription.
func (b *Bus) Close() {
	b.mu.RLock()
	subs := make([]*Subscription, 0, len(b.subs))
	for _, s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.RUnlock()

	for _, s := range subs {
		s.Close()
	}
}

func (b *Bus) remove(id string) {
	b.mu.Lock()
	delete(b.subs, id)
	b.mu.Unlock()
}
