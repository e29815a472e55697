package list_notifications

import (
	"net/http"
	"strconv"

	"github.com/lenslot/LS-BookingService/internal/api/handlers"
	"github.com/lenslot/LS-BookingService/internal/api/middleware"
)

const (
	msgInvalidUnread   = "invalid unread value"
	msgMissingIdentity = "missing user identity"
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

// Handle GET /api/v1/notifications?unread=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, handlers.KindAccessDenied, msgMissingIdentity)
		return
	}

	unreadOnly := false
	if raw := r.URL.Query().Get("unread"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /notifications - Invalid unread value %q: user_id=%s", raw, userID)
			handlers.RespondBadRequest(w, msgInvalidUnread)
			return
		}
		unreadOnly = parsed
	}

	result, err := h.service.List(r.Context(), userID, unreadOnly)
	if err != nil {
		h.logger.Error("GET /notifications - Failed to list notifications: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /notifications - Returned %d notifications: user_id=%s", len(result.Notifications), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
