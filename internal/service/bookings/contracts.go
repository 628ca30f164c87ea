package bookings

import (
	"context"

	"github.com/acornglobus/court-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByID получает бронирование по ID
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)

	// GetRecent получает последние созданные бронирования
	GetRecent(ctx context.Context, limit int) ([]*domain.BookingSummary, error)

	// Cancel переводит бронирование в статус CANCELLED
	Cancel(ctx context.Context, id int64) error
}

// Cache инвалидация кеша доступности по дате (YYYY-MM-DD)
type Cache interface {
	Invalidate(ctx context.Context, date string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
