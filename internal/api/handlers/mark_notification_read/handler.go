package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lenslot/LS-BookingService/internal/api/handlers"
	"github.com/lenslot/LS-BookingService/internal/api/middleware"
	notificationService "github.com/lenslot/LS-BookingService/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "invalid notification id"
	msgNotificationNotFound  = "notification not found"
	msgAccessDenied          = "access to this notification is denied"
	msgMissingIdentity       = "missing user identity"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/notifications/{id}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, handlers.KindAccessDenied, msgMissingIdentity)
		return
	}

	notificationID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /notifications/{id}/read - Invalid notification id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	if err := h.service.MarkRead(r.Context(), notificationID, userID); err != nil {
		switch {
		case errors.Is(err, notificationService.ErrNotificationNotFound):
			h.logger.Warn("PATCH /notifications/{id}/read - Notification not found: notification_id=%d", notificationID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		case errors.Is(err, notificationService.ErrAccessDenied):
			h.logger.Warn("PATCH /notifications/{id}/read - Access denied: notification_id=%d, user_id=%s",
				notificationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /notifications/{id}/read - Failed to mark read: notification_id=%d, error=%v",
				notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /notifications/{id}/read - Marked read: notification_id=%d, user_id=%s", notificationID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleAll PATCH /api/v1/notifications/read-all
func (h *Handler) HandleAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, handlers.KindAccessDenied, msgMissingIdentity)
		return
	}

	if err := h.service.MarkAllRead(r.Context(), userID); err != nil {
		h.logger.Error("PATCH /notifications/read-all - Failed to mark all read: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /notifications/read-all - Marked all read: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
