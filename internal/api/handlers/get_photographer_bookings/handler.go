package get_photographer_bookings

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lenslot/LS-BookingService/internal/api/handlers"
	"github.com/lenslot/LS-BookingService/internal/api/middleware"
	bookingService "github.com/lenslot/LS-BookingService/internal/service/bookings"
)

const (
	msgInvalidPhotographerID = "invalid photographer id"
	msgAccessDenied          = "photographers can only view their own bookings"
	msgMissingIdentity       = "missing user identity"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/photographers/{photographerId}/bookings?from=&to=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, handlers.KindAccessDenied, msgMissingIdentity)
		return
	}

	photographerID, err := uuid.Parse(mux.Vars(r)["photographerId"])
	if err != nil {
		h.logger.Warn("GET /photographers/{photographerId}/bookings - Invalid photographer id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPhotographerID)
		return
	}

	req, err := parseQuery(photographerID, requesterID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /photographers/{photographerId}/bookings - Invalid query: photographer_id=%s, error=%v",
			photographerID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.GetPhotographerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrAccessDenied):
			h.logger.Warn("GET /photographers/{photographerId}/bookings - Access denied: photographer_id=%s, requester_id=%s",
				photographerID, requesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingService.ErrInvalidInput):
			h.logger.Warn("GET /photographers/{photographerId}/bookings - Invalid filter: photographer_id=%s, error=%v",
				photographerID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /photographers/{photographerId}/bookings - Failed to get bookings: photographer_id=%s, error=%v",
				photographerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /photographers/{photographerId}/bookings - Returned %d bookings: photographer_id=%s",
		len(result.Bookings), photographerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
