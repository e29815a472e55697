package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lenslot/LS-BookingService/internal/api/handlers"
	"github.com/lenslot/LS-BookingService/internal/domain"
	getAvailableSlots "github.com/lenslot/LS-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidPhotographerID = "invalid photographer id"
	msgInvalidDate           = "invalid date, expected YYYY-MM-DD"
	msgDateRequired          = "date query parameter is required"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/photographers/{photographerId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	photographerID, err := uuid.Parse(mux.Vars(r)["photographerId"])
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid photographer id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPhotographerID)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /available-slots - Missing date: photographer_id=%s", photographerID)
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		PhotographerID: photographerID,
		Date:           date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: photographer_id=%s, error=%v", photographerID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: photographer_id=%s, date=%s, error=%v",
				photographerID, rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Returned %d slots: photographer_id=%s, date=%s",
		len(result.Slots), photographerID, rawDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
