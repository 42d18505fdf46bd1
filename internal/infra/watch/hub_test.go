//go:build unit

package watch_test

import (
	"testing"
	"time"

	"np-reserve/internal/infra/watch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishSubscribe(t *testing.T) {
	hub := watch.NewHub()
	defer hub.Close()

	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	hub.Publish(watch.Event{Collection: watch.Produits})

	select {
	case e := <-ch:
		assert.Equal(t, watch.Produits, e.Collection)
	case <-time.After(time.Second):
		t.Fatal("expected an event")
	}
}

func TestHubCoalescesPendingEvents(t *testing.T) {
	hub := watch.NewHub()
	defer hub.Close()

	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	// A slow subscriber must never block publishers.
	hub.Publish(watch.Event{Collection: watch.Reservations})
	hub.Publish(watch.Event{Collection: watch.Reservations})
	hub.Publish(watch.Event{Collection: watch.Reservations})

	<-ch
	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected coalesced events, got a second delivery")
		}
	default:
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := watch.NewHub()
	defer hub.Close()

	ch, unsubscribe := hub.Subscribe()
	unsubscribe()
	unsubscribe() // idempotent

	_, ok := <-ch
	assert.False(t, ok)

	// Publishing after unsubscribe must not panic.
	hub.Publish(watch.Event{Collection: watch.Boutiques})
}

func TestHubCloseTearsDownSubscribers(t *testing.T) {
	hub := watch.NewHub()

	ch1, _ := hub.Subscribe()
	ch2, _ := hub.Subscribe()

	hub.Close()

	_, ok1 := <-ch1
	_, ok2 := <-ch2
	require.False(t, ok1)
	require.False(t, ok2)

	ch3, unsubscribe := hub.Subscribe()
	defer unsubscribe()
	_, ok3 := <-ch3
	assert.False(t, ok3)
}
