package list_notifications

import (
	"context"

	"github.com/google/uuid"

	notificationModels "github.com/lenslot/LS-BookingService/internal/service/notifications/models"
)

type NotificationService interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool) (*notificationModels.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
