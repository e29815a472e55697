package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lenslot/LS-BookingService/internal/api/handlers"
	"github.com/lenslot/LS-BookingService/internal/api/middleware"
	bookingService "github.com/lenslot/LS-BookingService/internal/service/bookings"
	bookingModels "github.com/lenslot/LS-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidUserID   = "invalid user id"
	msgInvalidStatus   = "invalid status filter"
	msgAccessDenied    = "users can only view their own bookings"
	msgMissingIdentity = "missing user identity"
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

// Handle GET /api/v1/users/{userId}/bookings?status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, handlers.KindAccessDenied, msgMissingIdentity)
		return
	}

	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		h.logger.Warn("GET /users/{userId}/bookings - Invalid user id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	req := &bookingModels.GetUserBookingsRequest{
		UserID:      userID,
		RequesterID: requesterID,
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrAccessDenied):
			h.logger.Warn("GET /users/{userId}/bookings - Access denied: user_id=%s, requester_id=%s", userID, requesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingService.ErrInvalidInput):
			h.logger.Warn("GET /users/{userId}/bookings - Invalid status filter: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{userId}/bookings - Failed to get bookings: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/bookings - Returned %d bookings: user_id=%s", len(result.Bookings), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
