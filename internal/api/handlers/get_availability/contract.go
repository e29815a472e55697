package get_availability

import (
	"context"

	"github.com/google/uuid"

	availabilityModels "github.com/lenslot/LS-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	Get(ctx context.Context, photographerID uuid.UUID) (*availabilityModels.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
