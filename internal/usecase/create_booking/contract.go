package create_booking

import (
	"context"
	"time"

	"github.com/acornglobus/court-booking-service/internal/domain"
	"github.com/acornglobus/court-booking-service/internal/usecase/quote_price"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create сохраняет бронирование со строками инвентаря
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)

	// GetConfirmedForDay получает все CONFIRMED бронирования на дату.
	// Внутри транзакции строки блокируются до COMMIT.
	GetConfirmedForDay(ctx context.Context, day time.Time) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	// GetEquipmentByIDs получает позиции инвентаря по списку ID
	GetEquipmentByIDs(ctx context.Context, ids []int64) ([]*domain.Equipment, error)
}

// PricingEngine рассчитывает итоговую стоимость бронирования.
// Реализуется use case расчета котировки: цена при создании и цена
// в котировке считаются одним и тем же кодом.
type PricingEngine interface {
	Execute(ctx context.Context, req *quote_price.Request) (*quote_price.Response, error)
}

// TransactionManager исполняет функцию внутри сериализуемой транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
