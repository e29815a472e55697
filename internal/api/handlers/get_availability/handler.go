package get_availability

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lenslot/LS-BookingService/internal/api/handlers"
)

const msgInvalidPhotographerID = "invalid photographer id"

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

// Handle GET /api/v1/photographers/{photographerId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	photographerID, err := uuid.Parse(mux.Vars(r)["photographerId"])
	if err != nil {
		h.logger.Warn("GET /availability - Invalid photographer id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPhotographerID)
		return
	}

	result, err := h.service.Get(r.Context(), photographerID)
	if err != nil {
		h.logger.Error("GET /availability - Failed to get availability: photographer_id=%s, error=%v",
			photographerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability - Returned availability: photographer_id=%s, dates=%d",
		photographerID, len(result.AvailableDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
