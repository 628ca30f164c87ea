package create_booking

import (
	"time"

	"github.com/acornglobus/court-booking-service/internal/domain"
	"github.com/acornglobus/court-booking-service/internal/usecase/quote_price"
)

// Request модель запроса создания бронирования
type Request struct {
	UserName    string
	Contact     *string
	CourtID     int64
	CoachID     *int64
	Equipment   []Selection
	StartTime   time.Time
	DurationHrs int
	Notes       *string
}

// Selection выбранная позиция инвентаря
type Selection struct {
	EquipmentID int64
	Quantity    int
}

// Response модель ответа: созданное бронирование и детализация
// стоимости, по которой посчитан TotalPrice
type Response struct {
	ID          int64
	Reference   string
	UserName    string
	CourtID     int64
	CoachID     *int64
	StartTime   time.Time
	DurationHrs int
	TotalPrice  float64
	Status      domain.BookingStatus
	CreatedAt   time.Time
	Pricing     *quote_price.Response
}
