// Package notify внутрипроцессный pub/sub для уведомлений.
// Сервис только публикует события по user id; доставкой наружу занимается
// внешний realtime-провайдер, который подписывается на хаб. Публикация
// неблокирующая: медленный подписчик теряет события, но не тормозит
// создание бронирований.
package notify

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
)

// Размер буфера канала подписчика
const subscriberBufferSize = 16

// Hub мультиплексор уведомлений по user id
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[int]chan domain.Notification
	next int
}

// NewHub создает пустой хаб
func NewHub() *Hub {
	return &Hub{
		subs: make(map[uuid.UUID]map[int]chan domain.Notification),
	}
}

// Subscribe подписывает на уведомления пользователя.
// Возвращает канал и функцию отписки; после отписки канал закрывается.
func (h *Hub) Subscribe(userID uuid.UUID) (<-chan domain.Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[userID] == nil {
		h.subs[userID] = make(map[int]chan domain.Notification)
	}

	id := h.next
	h.next++

	ch := make(chan domain.Notification, subscriberBufferSize)
	h.subs[userID][id] = ch

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if chans, ok := h.subs[userID]; ok {
			if ch, ok := chans[id]; ok {
				delete(chans, id)
				close(ch)
			}
			if len(chans) == 0 {
				delete(h.subs, userID)
			}
		}
	}

	return ch, unsubscribe
}

// Publish рассылает уведомление всем подписчикам пользователя.
// Не блокируется: при переполненном буфере событие отбрасывается.
func (h *Hub) Publish(userID uuid.UUID, n domain.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs[userID] {
		select {
		case ch <- n:
		default:
			// Подписчик не успевает — событие теряется, доставка best-effort
		}
	}
}
