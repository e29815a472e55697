package get_photographer_bookings

import (
	"context"

	bookingModels "github.com/lenslot/LS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetPhotographerBookings(ctx context.Context, req *bookingModels.GetPhotographerBookingsRequest) (*bookingModels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
