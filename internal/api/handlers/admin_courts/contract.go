package admin_courts

import (
	"context"

	"github.com/acornglobus/court-booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListCourts(ctx context.Context, onlyActive bool) ([]models.CourtResponse, error)
	CreateCourt(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error)
	UpdateCourt(ctx context.Context, id int64, req *models.UpdateCourtRequest) (*models.CourtResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
