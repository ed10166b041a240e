package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
)

// userIDHeader заголовок с идентификатором пользователя
// Заполняется вышестоящим API gateway после проверки сессии
const userIDHeader = "X-User-ID"

type ctxKey string

const userIDKey ctxKey = "userID"

// Auth извлекает идентификатор пользователя из заголовка запроса
// и кладет его в контекст. Запросы без заголовка отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(userIDHeader))
		if userID == "" {
			handlers.RespondUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает идентификатор пользователя из контекста
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// OptionalAuth кладет идентификатор пользователя в контекст, если
// заголовок есть, но не требует его. Для эндпоинтов, доступных без
// аутентификации (просмотр доски)
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(userIDHeader))
		if userID != "" {
			r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
		}
		next.ServeHTTP(w, r)
	})
}
