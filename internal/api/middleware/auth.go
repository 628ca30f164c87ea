package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/acornglobus/court-booking-service/internal/api/handlers"
)

// adminTokenHeader заголовок с токеном администратора
const adminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "missing or invalid admin token"

// AdminAuth закрывает админские маршруты статическим токеном из
// конфигурации. Пустой настроенный токен запрещает доступ полностью.
func AdminAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
