package catalog

import (
	"github.com/acornglobus/court-booking-service/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий справочников: корты, тренеры, инвентарь,
// правила ценообразования. Все сущности администрируются, долгоживущие
// и деактивируются флагом is_active, а не удаляются — на них ссылаются
// бронирования.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}
