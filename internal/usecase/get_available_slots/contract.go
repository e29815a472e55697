package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByPhotographerWithFilter(ctx context.Context, filter domain.PhotographerBookingsFilter) ([]*domain.Booking, error)
}

// AvailabilityRepository интерфейс репозитория availability
type AvailabilityRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Availability, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
