package update_availability

import (
	"context"

	availabilityModels "github.com/lenslot/LS-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	Update(ctx context.Context, req *availabilityModels.UpdateAvailabilityRequest) (*availabilityModels.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
