package catalog

import (
	"context"

	"github.com/acornglobus/court-booking-service/internal/domain"
	catalogRepo "github.com/acornglobus/court-booking-service/internal/infra/storage/catalog"
)

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	ListCourts(ctx context.Context, onlyActive bool) ([]*domain.Court, error)
	GetCourt(ctx context.Context, id int64) (*domain.Court, error)
	CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error)
	UpdateCourt(ctx context.Context, id int64, update catalogRepo.CourtUpdate) (*domain.Court, error)

	ListCoaches(ctx context.Context, onlyActive bool) ([]*domain.Coach, error)
	GetCoach(ctx context.Context, id int64) (*domain.Coach, error)
	CreateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error)
	UpdateCoach(ctx context.Context, id int64, update catalogRepo.CoachUpdate) (*domain.Coach, error)

	ListEquipment(ctx context.Context, onlyActive bool) ([]*domain.Equipment, error)
	GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error)
	CreateEquipment(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, id int64, update catalogRepo.EquipmentUpdate) (*domain.Equipment, error)

	ListRules(ctx context.Context, onlyActive bool) ([]*domain.PricingRule, error)
	CreateRule(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error)
	UpdateRule(ctx context.Context, id int64, update catalogRepo.RuleUpdate) (*domain.PricingRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
