package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/api/handlers"
)

// UserIDHeader заголовок с идентификатором пользователя, проставляется
// API-гейтвеем после проверки сессии
const UserIDHeader = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth извлекает идентификатор пользователя из заголовка и кладёт его
// в контекст запроса. Запросы без валидного UUID отклоняются
func Auth(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(UserIDHeader)
			if raw == "" {
				log.Warn("auth: missing %s header: %s %s", UserIDHeader, r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, handlers.KindAccessDenied, "missing user identity")
				return
			}

			userID, err := uuid.Parse(raw)
			if err != nil {
				log.Warn("auth: invalid %s header %q: %s %s", UserIDHeader, raw, r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, handlers.KindAccessDenied, "invalid user identity")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID возвращает идентификатор пользователя из контекста запроса
func UserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
