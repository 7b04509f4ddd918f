package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-TintingService/internal/api/handlers"
)

// HeaderUserID заголовок с ID пользователя, выставляется шлюзом
const HeaderUserID = "X-User-ID"

const msgUnauthorized = "требуется заголовок X-User-ID с положительным ID пользователя"

type userIDKey struct{}

// Auth пропускает запрос только с корректным X-User-ID и кладет ID в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя, сохраненный Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
