package admin_equipment

import (
	"context"

	"github.com/acornglobus/court-booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListEquipment(ctx context.Context, onlyActive bool) ([]models.EquipmentResponse, error)
	CreateEquipment(ctx context.Context, req *models.CreateEquipmentRequest) (*models.EquipmentResponse, error)
	UpdateEquipment(ctx context.Context, id int64, req *models.UpdateEquipmentRequest) (*models.EquipmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
