package models

import (
	"time"

	"github.com/acornglobus/court-booking-service/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64                `json:"id"`
	Reference   string               `json:"reference"`
	UserName    string               `json:"userName"`
	Contact     *string              `json:"contact,omitempty"`
	CourtID     int64                `json:"courtId"`
	CoachID     *int64               `json:"coachId,omitempty"`
	StartTime   time.Time            `json:"startTime"`
	DurationHrs int                  `json:"durationHrs"`
	TotalPrice  float64              `json:"totalPrice"`
	Status      domain.BookingStatus `json:"status"`
	Notes       *string              `json:"notes,omitempty"`
	Equipment   []EquipmentLine      `json:"equipment,omitempty"`
	CancelledAt *time.Time           `json:"cancelledAt,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// EquipmentLine строка аренды инвентаря
type EquipmentLine struct {
	EquipmentID int64 `json:"equipmentId"`
	Quantity    int   `json:"quantity"`
}

// BookingSummaryResponse строка истории бронирований
type BookingSummaryResponse struct {
	ID          int64                `json:"id"`
	Reference   string               `json:"reference"`
	UserName    string               `json:"userName"`
	CourtID     int64                `json:"courtId"`
	CourtName   string               `json:"courtName"`
	CoachID     *int64               `json:"coachId,omitempty"`
	CoachName   *string              `json:"coachName,omitempty"`
	StartTime   time.Time            `json:"startTime"`
	DurationHrs int                  `json:"durationHrs"`
	TotalPrice  float64              `json:"totalPrice"`
	Status      domain.BookingStatus `json:"status"`
	Equipment   []EquipmentLine      `json:"equipment,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingSummaryResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	lines := make([]EquipmentLine, 0, len(b.Lines))
	for _, line := range b.Lines {
		lines = append(lines, EquipmentLine{
			EquipmentID: line.EquipmentID,
			Quantity:    line.Quantity,
		})
	}

	return &BookingResponse{
		ID:          b.ID,
		Reference:   b.Reference,
		UserName:    b.UserName,
		Contact:     b.Contact,
		CourtID:     b.CourtID,
		CoachID:     b.CoachID,
		StartTime:   b.StartTime,
		DurationHrs: b.DurationHrs,
		TotalPrice:  b.TotalPrice,
		Status:      b.Status,
		Notes:       b.Notes,
		Equipment:   lines,
		CancelledAt: b.CancelledAt,
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainSummaries конвертирует список domain моделей в response
func FromDomainSummaries(summaries []*domain.BookingSummary) *BookingListResponse {
	result := make([]BookingSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		lines := make([]EquipmentLine, 0, len(s.Lines))
		for _, line := range s.Lines {
			lines = append(lines, EquipmentLine{
				EquipmentID: line.EquipmentID,
				Quantity:    line.Quantity,
			})
		}

		result = append(result, BookingSummaryResponse{
			ID:          s.ID,
			Reference:   s.Reference,
			UserName:    s.UserName,
			CourtID:     s.CourtID,
			CourtName:   s.CourtName,
			CoachID:     s.CoachID,
			CoachName:   s.CoachName,
			StartTime:   s.StartTime,
			DurationHrs: s.DurationHrs,
			TotalPrice:  s.TotalPrice,
			Status:      s.Status,
			Equipment:   lines,
			CreatedAt:   s.CreatedAt,
		})
	}
	return &BookingListResponse{Bookings: result}
}
