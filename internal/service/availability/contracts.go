package availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория availability
type AvailabilityRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Availability, error)
	Upsert(ctx context.Context, availability *domain.Availability) (*domain.Availability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
