package mark_notification_read

import (
	"context"

	"github.com/google/uuid"
)

type NotificationService interface {
	MarkRead(ctx context.Context, id int64, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
