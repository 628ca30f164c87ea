package create_booking

import (
	"time"

	"github.com/acornglobus/court-booking-service/internal/api/handlers/quote_price"
	"github.com/acornglobus/court-booking-service/internal/domain"
	createBooking "github.com/acornglobus/court-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UserName    string               `json:"userName"`
	Contact     *string              `json:"contact,omitempty"`
	CourtID     int64                `json:"courtId"`
	CoachID     *int64               `json:"coachId,omitempty"`
	Equipment   []EquipmentSelection `json:"equipment,omitempty"`
	Date        string               `json:"date"`      // "2025-11-04"
	StartTime   string               `json:"startTime"` // "18:00"
	DurationHrs int                  `json:"durationHrs"`
	Notes       *string              `json:"notes,omitempty"`
}

// EquipmentSelection выбранная позиция инвентаря
type EquipmentSelection struct {
	EquipmentID int64 `json:"equipmentId"`
	Quantity    int   `json:"quantity"`
}

// CreateBookingResponse HTTP response model: бронирование и детализация
// стоимости, по которой посчитан totalPrice
type CreateBookingResponse struct {
	Booking BookingResponse            `json:"booking"`
	Pricing *quote_price.QuoteResponse `json:"pricing"`
}

// BookingResponse созданное бронирование
type BookingResponse struct {
	ID          int64   `json:"id"`
	Reference   string  `json:"reference"`
	UserName    string  `json:"userName"`
	CourtID     int64   `json:"courtId"`
	CoachID     *int64  `json:"coachId,omitempty"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	DurationHrs int     `json:"durationHrs"`
	TotalPrice  float64 `json:"totalPrice"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startTime, err := quote_price.ParseSlotStart(r.Date, r.StartTime)
	if err != nil {
		return nil, err
	}

	equipment := make([]createBooking.Selection, 0, len(r.Equipment))
	for _, sel := range r.Equipment {
		equipment = append(equipment, createBooking.Selection{
			EquipmentID: sel.EquipmentID,
			Quantity:    sel.Quantity,
		})
	}

	return &createBooking.Request{
		UserName:    r.UserName,
		Contact:     r.Contact,
		CourtID:     r.CourtID,
		CoachID:     r.CoachID,
		Equipment:   equipment,
		StartTime:   startTime,
		DurationHrs: r.DurationHrs,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	var pricing *quote_price.QuoteResponse
	if resp.Pricing != nil {
		pricing = quote_price.FromUseCaseResponse(resp.Pricing)
	}

	return &CreateBookingResponse{
		Booking: BookingResponse{
			ID:          resp.ID,
			Reference:   resp.Reference,
			UserName:    resp.UserName,
			CourtID:     resp.CourtID,
			CoachID:     resp.CoachID,
			Date:        resp.StartTime.Format(domain.DateFormat),
			StartTime:   resp.StartTime.Format("15:04"),
			DurationHrs: resp.DurationHrs,
			TotalPrice:  resp.TotalPrice,
			Status:      string(resp.Status),
			CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		},
		Pricing: pricing,
	}
}
