package identity

import (
	"sync"
	"testing"
	"time"

	"fikrswap-academy-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewEventBus(logger.NopLogger{})
	defer bus.Close()

	var mu sync.Mutex
	var first, second []EventKind

	unsub1 := bus.Subscribe(func(e AuthEvent) {
		mu.Lock()
		first = append(first, e.Kind)
		mu.Unlock()
	})
	defer unsub1()
	unsub2 := bus.Subscribe(func(e AuthEvent) {
		mu.Lock()
		second = append(second, e.Kind)
		mu.Unlock()
	})
	defer unsub2()

	require.NoError(t, bus.Publish(AuthEvent{Kind: EventSignedIn, Session: &Session{AccessToken: "t"}}))
	require.NoError(t, bus.Publish(AuthEvent{Kind: EventSignedOut}))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(first) == 2 && len(second) == 2
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []EventKind{EventSignedIn, EventSignedOut}, first)
	assert.Equal(t, []EventKind{EventSignedIn, EventSignedOut}, second)
}

func TestEventBusUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewEventBus(logger.NopLogger{})
	defer bus.Close()

	var mu sync.Mutex
	count := 0
	unsub := bus.Subscribe(func(AuthEvent) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	require.NoError(t, bus.Publish(AuthEvent{Kind: EventSignedIn}))
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count == 1
	}, time.Second, 5*time.Millisecond)

	unsub()
	// Give the cancellation a moment to take effect before publishing.
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, bus.Publish(AuthEvent{Kind: EventSignedOut}))
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, count)
}

func TestEventBusSessionRoundTrip(t *testing.T) {
	bus := NewEventBus(logger.NopLogger{})
	defer bus.Close()

	received := make(chan AuthEvent, 1)
	unsub := bus.Subscribe(func(e AuthEvent) { received <- e })
	defer unsub()

	sent := AuthEvent{
		Kind: EventSignedIn,
		Session: &Session{
			AccessToken: "token",
			User:        UserProfile{Email: "learner@example.com"},
		},
	}
	require.NoError(t, bus.Publish(sent))

	select {
	case got := <-received:
		require.NotNil(t, got.Session)
		assert.Equal(t, "learner@example.com", got.Session.User.Email)
		assert.Equal(t, "token", got.Session.AccessToken)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}
