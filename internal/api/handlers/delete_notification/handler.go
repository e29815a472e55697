package delete_notification

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

// Handle DELETE /api/v1/notifications/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, handlers.KindAccessDenied, msgMissingIdentity)
		return
	}

	notificationID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /notifications/{id} - Invalid notification id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	if err := h.service.Delete(r.Context(), notificationID, userID); err != nil {
		switch {
		case errors.Is(err, notificationService.ErrNotificationNotFound):
			h.logger.Warn("DELETE /notifications/{id} - Notification not found: notification_id=%d", notificationID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		case errors.Is(err, notificationService.ErrAccessDenied):
			h.logger.Warn("DELETE /notifications/{id} - Access denied: notification_id=%d, user_id=%s",
				notificationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /notifications/{id} - Failed to delete: notification_id=%d, error=%v",
				notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /notifications/{id} - Deleted: notification_id=%d, user_id=%s", notificationID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
