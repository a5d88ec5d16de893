package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() { bus.Publish(CartUpdated) })
}

func TestBus_DeliversExactlyOncePerPublish(t *testing.T) {
	bus := NewBus()
	calls := 0
	bus.Subscribe(CartUpdated, func() { calls++ })

	bus.Publish(CartUpdated)
	assert.Equal(t, 1, calls)

	bus.Publish(CartUpdated)
	assert.Equal(t, 2, calls)
}

func TestBus_KindsAreIndependent(t *testing.T) {
	bus := NewBus()
	cart, orders := 0, 0
	bus.Subscribe(CartUpdated, func() { cart++ })
	bus.Subscribe(OrdersUpdated, func() { orders++ })

	bus.Publish(CartUpdated)
	assert.Equal(t, 1, cart)
	assert.Equal(t, 0, orders)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	unsub := bus.Subscribe(CartUpdated, func() { calls++ })

	bus.Publish(CartUpdated)
	unsub()
	bus.Publish(CartUpdated)
	assert.Equal(t, 1, calls)
}

func TestBus_LateSubscriberMissesEarlierEvents(t *testing.T) {
	bus := NewBus()
	bus.Publish(CartUpdated)

	calls := 0
	bus.Subscribe(CartUpdated, func() { calls++ })
	assert.Equal(t, 0, calls)
}

func TestBus_MultipleSubscribers(t *testing.T) {
	bus := NewBus()
	a, b := 0, 0
	bus.Subscribe(CartUpdated, func() { a++ })
	bus.Subscribe(CartUpdated, func() { b++ })

	bus.Publish(CartUpdated)
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}
