package quote_price

import (
	"context"

	"github.com/acornglobus/court-booking-service/internal/domain"
)

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	// GetCourt получает корт по ID
	GetCourt(ctx context.Context, id int64) (*domain.Court, error)

	// GetCoach получает тренера по ID
	GetCoach(ctx context.Context, id int64) (*domain.Coach, error)

	// GetEquipmentByIDs получает позиции инвентаря по списку ID.
	// Ошибка, если хотя бы один ID не найден.
	GetEquipmentByIDs(ctx context.Context, ids []int64) ([]*domain.Equipment, error)

	// ListRules получает правила ценообразования
	ListRules(ctx context.Context, onlyActive bool) ([]*domain.PricingRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
