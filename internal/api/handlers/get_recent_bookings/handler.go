package get_recent_bookings

import (
	"net/http"
	"strconv"

	"github.com/acornglobus/court-booking-service/internal/api/handlers"
)

const msgInvalidLimit = "query parameter 'limit' must be a positive integer"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/recent?limit=20
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /bookings/recent - Invalid limit %q", rawLimit)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.GetRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /bookings/recent - Failed to fetch bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/recent - Fetched %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
