package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lenslot/LS-BookingService/internal/api/handlers"
	"github.com/lenslot/LS-BookingService/internal/api/middleware"
	bookingService "github.com/lenslot/LS-BookingService/internal/service/bookings"
	bookingModels "github.com/lenslot/LS-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgAccessDenied       = "only the photographer can change the booking status"
	msgInvalidTransition  = "status transition is not allowed"
	msgSessionNotStarted  = "booking can be completed only after the session starts"
	msgMissingIdentity    = "missing user identity"
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

// Handle PATCH /api/v1/bookings/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, handlers.KindAccessDenied, msgMissingIdentity)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req bookingModels.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	if err := h.service.UpdateStatus(r.Context(), bookingID, &req); err != nil {
		switch {
		case errors.Is(err, bookingService.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingService.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/status - Access denied: booking_id=%d, user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingService.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid transition: booking_id=%d, status=%s",
				bookingID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, bookingService.ErrSessionNotStarted):
			h.logger.Warn("PATCH /bookings/{id}/status - Session not started: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSessionNotStarted)

		case errors.Is(err, bookingService.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to update status: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status updated: booking_id=%d, status=%s, user_id=%s",
		bookingID, req.Status, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
