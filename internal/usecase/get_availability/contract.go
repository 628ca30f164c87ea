package get_availability

import (
	"context"
	"time"

	"github.com/acornglobus/court-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetConfirmedForDay получает все CONFIRMED бронирования на дату
	GetConfirmedForDay(ctx context.Context, day time.Time) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	ListCourts(ctx context.Context, onlyActive bool) ([]*domain.Court, error)
	ListCoaches(ctx context.Context, onlyActive bool) ([]*domain.Coach, error)
	ListEquipment(ctx context.Context, onlyActive bool) ([]*domain.Equipment, error)
}

// Cache кеш ответов доступности по дате (YYYY-MM-DD).
// Ошибки кеша не фатальны: доступность пересчитывается из хранилища.
type Cache interface {
	Get(ctx context.Context, date string) ([]byte, error)
	Set(ctx context.Context, date string, payload []byte) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
