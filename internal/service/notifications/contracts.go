package notifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
