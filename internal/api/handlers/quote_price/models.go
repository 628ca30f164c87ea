package quote_price

import (
	"fmt"
	"time"

	"github.com/acornglobus/court-booking-service/internal/domain"
	quotePrice "github.com/acornglobus/court-booking-service/internal/usecase/quote_price"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	CourtID     int64                `json:"courtId"`
	CoachID     *int64               `json:"coachId,omitempty"`
	Equipment   []EquipmentSelection `json:"equipment,omitempty"`
	Date        string               `json:"date"`      // "2025-11-04"
	StartTime   string               `json:"startTime"` // "18:00"
	DurationHrs int                  `json:"durationHrs"`
}

// EquipmentSelection выбранная позиция инвентаря
type EquipmentSelection struct {
	EquipmentID int64 `json:"equipmentId"`
	Quantity    int   `json:"quantity"`
}

// QuoteResponse HTTP response model: детализация стоимости
type QuoteResponse struct {
	BaseCourt      float64              `json:"baseCourt"`
	Adjustments    []AdjustmentResponse `json:"adjustments"`
	EquipmentTotal float64              `json:"equipmentTotal"`
	CoachTotal     float64              `json:"coachTotal"`
	Total          float64              `json:"total"`
}

// AdjustmentResponse примененная корректировка
type AdjustmentResponse struct {
	RuleID int64   `json:"ruleId"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*quotePrice.Request, error) {
	startTime, err := ParseSlotStart(r.Date, r.StartTime)
	if err != nil {
		return nil, err
	}

	equipment := make([]quotePrice.Selection, 0, len(r.Equipment))
	for _, sel := range r.Equipment {
		equipment = append(equipment, quotePrice.Selection{
			EquipmentID: sel.EquipmentID,
			Quantity:    sel.Quantity,
		})
	}

	return &quotePrice.Request{
		CourtID:     r.CourtID,
		CoachID:     r.CoachID,
		Equipment:   equipment,
		StartTime:   startTime,
		DurationHrs: r.DurationHrs,
	}, nil
}

// ParseSlotStart собирает время начала слота из даты и времени "HH:MM".
// Время трактуется как локальное время площадки (UTC в хранилище).
func ParseSlotStart(date, startTime string) (time.Time, error) {
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %w", err)
	}

	clock, err := time.Parse("15:04", startTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start time: %w", err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	adjustments := make([]AdjustmentResponse, 0, len(resp.Adjustments))
	for _, adj := range resp.Adjustments {
		adjustments = append(adjustments, AdjustmentResponse{
			RuleID: adj.RuleID,
			Label:  adj.Label,
			Amount: adj.Amount,
		})
	}

	return &QuoteResponse{
		BaseCourt:      resp.BaseCourt,
		Adjustments:    adjustments,
		EquipmentTotal: resp.EquipmentTotal,
		CoachTotal:     resp.CoachTotal,
		Total:          resp.Total,
	}
}
