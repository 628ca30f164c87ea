package admin_pricing_rules

import (
	"context"

	"github.com/acornglobus/court-booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListRules(ctx context.Context, onlyActive bool) ([]models.RuleResponse, error)
	CreateRule(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error)
	UpdateRule(ctx context.Context, id int64, req *models.UpdateRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
