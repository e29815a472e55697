package cancel_booking

import (
	"errors"
	"io"
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
	msgAccessDenied       = "access to this booking is denied"
	msgCannotCancel       = "booking can no longer be cancelled"
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

// Handle PATCH /api/v1/bookings/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, handlers.KindAccessDenied, msgMissingIdentity)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Тело опционально: отмена без указания причины допустима
	var req bookingModels.CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid request body: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	if err := h.service.Cancel(r.Context(), bookingID, &req); err != nil {
		switch {
		case errors.Is(err, bookingService.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingService.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%d, user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingService.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, bookingService.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%d, user_id=%s", bookingID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
