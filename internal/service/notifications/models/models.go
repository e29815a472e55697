package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
)

// NotificationResponse ответ с данными уведомления
type NotificationResponse struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse ответ со списком уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// FromDomainNotification конвертирует domain модель в DTO
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}

	return &NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(notifications []*domain.Notification) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
	}

	for _, n := range notifications {
		if dto := FromDomainNotification(n); dto != nil {
			resp.Notifications = append(resp.Notifications, *dto)
			if !dto.Read {
				resp.UnreadCount++
			}
		}
	}

	return resp
}
