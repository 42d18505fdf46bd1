// Package watch provides the in-process live-snapshot mechanism: commands
// publish a change event per collection after a successful write, and
// consumers re-derive their state from the store on every event. The store
// stays the single source of truth; events only invalidate.
package watch

import (
	"sync"
)

type Collection string

const (
	Boutiques    Collection = "boutiques"
	Produits     Collection = "produits"
	Reservations Collection = "reservations"
)

type Event struct {
	Collection Collection
}

type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[int]chan Event),
	}
}

// Publish notifies every subscriber that a collection changed. Delivery is
// non-blocking: a subscriber whose buffer already holds a pending event is
// skipped, since consecutive invalidations for the same snapshot coalesce.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a listener and returns its event channel together
// with an unsubscribe capability. Unsubscribing closes the channel; the
// returned func is idempotent.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 1)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(ch)
			}
		})
	}
	return ch, unsubscribe
}

// Close tears down every subscription; later Publish calls are no-ops.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
