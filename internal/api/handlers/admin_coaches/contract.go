package admin_coaches

import (
	"context"

	"github.com/acornglobus/court-booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListCoaches(ctx context.Context, onlyActive bool) ([]models.CoachResponse, error)
	CreateCoach(ctx context.Context, req *models.CreateCoachRequest) (*models.CoachResponse, error)
	UpdateCoach(ctx context.Context, id int64, req *models.UpdateCoachRequest) (*models.CoachResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
