package notify

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenslot/LS-BookingService/internal/domain"
)

func TestHubDeliversToSubscriber(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	ch, unsubscribe := hub.Subscribe(userID)
	defer unsubscribe()

	hub.Publish(userID, domain.Notification{ID: 1, UserID: userID, Title: "Booking Confirmed"})

	select {
	case n := <-ch:
		assert.Equal(t, int64(1), n.ID)
		assert.Equal(t, "Booking Confirmed", n.Title)
	default:
		t.Fatal("expected a buffered notification")
	}
}

func TestHubIsolatesUsers(t *testing.T) {
	hub := NewHub()
	alice := uuid.New()
	bob := uuid.New()

	aliceCh, unsubAlice := hub.Subscribe(alice)
	defer unsubAlice()
	bobCh, unsubBob := hub.Subscribe(bob)
	defer unsubBob()

	hub.Publish(alice, domain.Notification{ID: 1, UserID: alice})

	assert.Len(t, aliceCh, 1)
	assert.Len(t, bobCh, 0)
}

func TestHubFanOut(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	first, unsubFirst := hub.Subscribe(userID)
	defer unsubFirst()
	second, unsubSecond := hub.Subscribe(userID)
	defer unsubSecond()

	hub.Publish(userID, domain.Notification{ID: 7, UserID: userID})

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	ch, unsubscribe := hub.Subscribe(userID)
	unsubscribe()

	_, open := <-ch
	require.False(t, open)

	// Публикация после отписки не паникует
	hub.Publish(userID, domain.Notification{ID: 2, UserID: userID})

	// Повторная отписка безопасна
	unsubscribe()
}

func TestHubDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	ch, unsubscribe := hub.Subscribe(userID)
	defer unsubscribe()

	for i := 0; i < subscriberBufferSize+10; i++ {
		hub.Publish(userID, domain.Notification{ID: int64(i), UserID: userID})
	}

	// Лишние события отброшены, буфер не переполняется и Publish не виснет
	assert.Len(t, ch, subscriberBufferSize)
}
