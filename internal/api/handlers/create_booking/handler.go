package create_booking

import (
	"errors"
	"net/http"

	"github.com/lenslot/LS-BookingService/internal/api/handlers"
	"github.com/lenslot/LS-BookingService/internal/api/middleware"
	createBooking "github.com/lenslot/LS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateOrTime    = "invalid date or start time, expected YYYY-MM-DD and h:mm AM/PM"
	msgPhotographerNotFound = "photographer not found"
	msgNotAPhotographer     = "requested user is not a photographer"
	msgDateNotAvailable     = "photographer is not available on this date"
	msgTooLateToBook        = "booking does not meet the advance notice requirement"
	msgDailyLimitReached    = "photographer is fully booked on this date"
	msgBufferConflict       = "requested time is too close to another booking"
	msgMissingIdentity      = "missing user identity"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, handlers.KindAccessDenied, msgMissingIdentity)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrPhotographerNotFound):
			h.logger.Warn("POST /bookings - Photographer not found: photographer_id=%s", req.PhotographerID)
			handlers.RespondNotFound(w, msgPhotographerNotFound)

		case errors.Is(err, createBooking.ErrNotAPhotographer):
			h.logger.Warn("POST /bookings - Not a photographer: photographer_id=%s", req.PhotographerID)
			handlers.RespondBadRequest(w, msgNotAPhotographer)

		case errors.Is(err, createBooking.ErrDateNotAvailable):
			h.logger.Warn("POST /bookings - Date not available: photographer_id=%s, date=%s", req.PhotographerID, req.Date)
			handlers.RespondConflict(w, msgDateNotAvailable)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: photographer_id=%s, date=%s", req.PhotographerID, req.Date)
			handlers.RespondConflict(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrDailyLimitReached):
			h.logger.Warn("POST /bookings - Daily limit reached: photographer_id=%s, date=%s", req.PhotographerID, req.Date)
			handlers.RespondConflict(w, msgDailyLimitReached)

		case errors.Is(err, createBooking.ErrBufferConflict):
			h.logger.Warn("POST /bookings - Buffer conflict: photographer_id=%s, date=%s, start_time=%s",
				req.PhotographerID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgBufferConflict)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: client_id=%s, error=%v", clientID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%s, photographer_id=%s, error=%v",
				clientID, req.PhotographerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%s, photographer_id=%s",
		result.ID, clientID, req.PhotographerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
