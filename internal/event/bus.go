// Package event carries cross-screen refresh signals. Delivery is
// synchronous, in-process and best effort: an event published with no
// subscriber is dropped, there is no queueing or replay. Consumers still
// fetch on mount and treat the bus as a freshness nudge only.
package event

import (
	"sync"

	"github.com/google/uuid"
)

// Kind enumerates the event vocabulary; publishers and subscribers are
// type-checked against the same set.
type Kind string

const (
	CartUpdated    Kind = "cart.updated"
	OrdersUpdated  Kind = "orders.updated"
	SessionChanged Kind = "session.changed"
)

type Bus struct {
	mu   sync.RWMutex
	subs map[Kind]map[uuid.UUID]func()
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Kind]map[uuid.UUID]func())}
}

// Subscribe registers fn for kind and returns its unsubscribe function.
func (b *Bus) Subscribe(kind Kind, fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := uuid.New()
	if b.subs[kind] == nil {
		b.subs[kind] = make(map[uuid.UUID]func())
	}
	b.subs[kind][id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[kind], id)
	}
}

// Publish invokes every current subscriber of kind exactly once.
func (b *Bus) Publish(kind Kind) {
	b.mu.RLock()
	fns := make([]func(), 0, len(b.subs[kind]))
	for _, fn := range b.subs[kind] {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
