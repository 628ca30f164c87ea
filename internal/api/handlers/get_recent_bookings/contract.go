package get_recent_bookings

import (
	"context"

	"github.com/acornglobus/court-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetRecent(ctx context.Context, limit int) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
