package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		provided   string
		wantStatus int
	}{
		{
			name:       "valid token passes",
			configured: "secret-token",
			provided:   "secret-token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong token rejected",
			configured: "secret-token",
			provided:   "wrong",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing token rejected",
			configured: "secret-token",
			provided:   "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty configured token denies everything",
			configured: "",
			provided:   "",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AdminAuth(tt.configured)(okHandler())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/courts", nil)
			if tt.provided != "" {
				req.Header.Set("X-Admin-Token", tt.provided)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRateLimit_BurstThenRejected(t *testing.T) {
	// rps=1 с burst=2: первые два запроса проходят мгновенно,
	// третий упирается в пустой bucket
	handler := RateLimit(1, 2)(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil))
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i+1)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
