package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/acornglobus/court-booking-service/internal/api/handlers"
)

const msgRateLimited = "too many requests, try again later"

// RateLimit ограничивает частоту запросов общим token bucket.
// Лимит общий на процесс: защищает хранилище от всплесков создания
// бронирований, а не отдельных клиентов друг от друга.
func RateLimit(rps float64, burst int) mux.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				handlers.RespondTooManyRequests(w, msgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
