package get_booking

import (
	"context"

	"github.com/google/uuid"

	bookingModels "github.com/lenslot/LS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*bookingModels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
