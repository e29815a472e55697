package get_photographer_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
	bookingModels "github.com/lenslot/LS-BookingService/internal/service/bookings/models"
)

// parseQuery собирает request сервиса из query-параметров
// from, to, status, includeInactive
func parseQuery(photographerID, requesterID uuid.UUID, query url.Values) (*bookingModels.GetPhotographerBookingsRequest, error) {
	req := &bookingModels.GetPhotographerBookingsRequest{
		PhotographerID: photographerID,
		RequesterID:    requesterID,
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid from date %q", raw)
		}
		req.StartDate = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid to date %q", raw)
		}
		req.EndDate = &to
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("to date precedes from date")
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value %q", raw)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
