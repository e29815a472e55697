package update_availability

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lenslot/LS-BookingService/internal/api/handlers"
	"github.com/lenslot/LS-BookingService/internal/api/middleware"
	availabilityService "github.com/lenslot/LS-BookingService/internal/service/availability"
	availabilityModels "github.com/lenslot/LS-BookingService/internal/service/availability/models"
)

const (
	msgInvalidPhotographerID = "invalid photographer id"
	msgInvalidRequestBody    = "invalid request body"
	msgAccessDenied          = "only the photographer can change their availability"
	msgMissingIdentity       = "missing user identity"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/photographers/{photographerId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, handlers.KindAccessDenied, msgMissingIdentity)
		return
	}

	photographerID, err := uuid.Parse(mux.Vars(r)["photographerId"])
	if err != nil {
		h.logger.Warn("PUT /availability - Invalid photographer id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPhotographerID)
		return
	}

	var req availabilityModels.UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability - Invalid request body: photographer_id=%s, error=%v", photographerID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.PhotographerID = photographerID
	req.RequesterID = userID

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrAccessDenied):
			h.logger.Warn("PUT /availability - Access denied: user_id=%s, photographer_id=%s", userID, photographerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, availabilityService.ErrInvalidSchedule),
			errors.Is(err, availabilityService.ErrInvalidSettings),
			errors.Is(err, availabilityService.ErrInvalidDate),
			errors.Is(err, availabilityService.ErrDateOutsideSchedule),
			errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("PUT /availability - Validation failed: photographer_id=%s, error=%v", photographerID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /availability - Failed to update availability: photographer_id=%s, error=%v",
				photographerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability - Availability updated: photographer_id=%s, dates=%d",
		photographerID, len(result.AvailableDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
