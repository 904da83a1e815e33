package realtime

import (
	"sync"

	"fieldops/internal/infrastructure/pubsub"
)

// subscriberBuffer bounds each subscriber channel. A burst that overruns the
// buffer coalesces into one pending event per table instead of dropping, so
// the last event of a burst always reaches the consumer.
const subscriberBuffer = 16

// Subscription is one subscriber's event stream. A forwarder goroutine moves
// pending events onto C, so a slow consumer never blocks Dispatch and never
// loses the notification that would have made it refresh.
type Subscription struct {
	C     <-chan pubsub.ChangeEvent
	ch    chan pubsub.ChangeEvent
	feed  *Feed
	id    int
	table string

	mu      sync.Mutex
	pending []pubsub.ChangeEvent
	wake    chan struct{}
	done    chan struct{}
}

// Close releases the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.feed.unsubscribe(s)
}

// enqueue records the event and wakes the forwarder. At most one pending
// event per table is kept: consumers refresh from the source of truth, so the
// latest notification subsumes the ones before it.
func (s *Subscription) enqueue(event pubsub.ChangeEvent) {
	s.mu.Lock()
	replaced := false
	for i := range s.pending {
		if s.pending[i].Table == event.Table {
			s.pending[i] = event
			replaced = true
			break
		}
	}
	if !replaced {
		s.pending = append(s.pending, event)
	}
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// forward drains the pending queue onto the channel. It owns the channel
// close, so consumers ranging over C terminate once the subscription is
// released.
func (s *Subscription) forward() {
	defer close(s.ch)
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		for {
			s.mu.Lock()
			if len(s.pending) == 0 {
				s.mu.Unlock()
				break
			}
			event := s.pending[0]
			s.pending = s.pending[1:]
			s.mu.Unlock()

			select {
			case s.ch <- event:
			case <-s.done:
				return
			}
		}
	}
}

// Feed fans incoming change events out to per-table subscribers. It sits
// between the redis change feed and the in-process consumers (table caches,
// the websocket relay).
type Feed struct {
	mu     sync.Mutex
	subs   map[int]*Subscription
	nextID int
}

func NewFeed() *Feed {
	return &Feed{
		subs: make(map[int]*Subscription),
	}
}

// Subscribe returns an event stream limited to the given table.
func (f *Feed) Subscribe(table string) *Subscription {
	return f.subscribe(table)
}

// SubscribeAll returns an event stream carrying every table's events.
func (f *Feed) SubscribeAll() *Subscription {
	return f.subscribe("")
}

func (f *Feed) subscribe(table string) *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan pubsub.ChangeEvent, subscriberBuffer)
	sub := &Subscription{
		C:     ch,
		ch:    ch,
		feed:  f,
		id:    f.nextID,
		table: table,
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	f.subs[f.nextID] = sub
	f.nextID++

	go sub.forward()
	return sub
}

func (f *Feed) unsubscribe(s *Subscription) {
	f.mu.Lock()
	if _, ok := f.subs[s.id]; !ok {
		f.mu.Unlock()
		return
	}
	delete(f.subs, s.id)
	f.mu.Unlock()

	close(s.done)
}

// Dispatch delivers an event to every matching subscriber without blocking.
func (f *Feed) Dispatch(event pubsub.ChangeEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, sub := range f.subs {
		if sub.table != "" && sub.table != event.Table {
			continue
		}
		sub.enqueue(event)
	}
}

// Close releases every subscription.
func (f *Feed) Close() {
	f.mu.Lock()
	subs := make([]*Subscription, 0, len(f.subs))
	for id, sub := range f.subs {
		delete(f.subs, id)
		subs = append(subs, sub)
	}
	f.mu.Unlock()

	for _, sub := range subs {
		close(sub.done)
	}
}
