package get_availability

import (
	"time"

	"github.com/acornglobus/court-booking-service/internal/domain"
)

// Request модель запроса доступности на дату
type Request struct {
	Date time.Time // календарная дата (без времени)
}

// Response модель ответа: по одному слоту на каждый рабочий час
type Response struct {
	Date  time.Time
	Slots []domain.SlotAvailability
}
