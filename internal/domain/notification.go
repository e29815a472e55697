package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType category of a notification record
type NotificationType string

const (
	NotificationBookingRequest   NotificationType = "booking_request"   // фотографу: новый запрос
	NotificationBookingSubmitted NotificationType = "booking_submitted" // клиенту: запрос отправлен
	NotificationBookingConfirmed NotificationType = "booking_confirmed"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
	NotificationBookingCompleted NotificationType = "booking_completed"
)

// Notification an in-app notification record.
// Delivery is best-effort: a failed write never fails the operation
// that produced it.
type Notification struct {
	ID        int64
	UserID    uuid.UUID
	Type      NotificationType
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}
