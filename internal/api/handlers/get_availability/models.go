package get_availability

import (
	"time"

	"github.com/acornglobus/court-booking-service/internal/domain"
	getAvailability "github.com/acornglobus/court-booking-service/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse доступность ресурсов в одном часовом слоте
type SlotResponse struct {
	StartTime             string                  `json:"startTime"` // RFC3339
	AvailableCourts       []CourtResponse         `json:"availableCourts"`
	AvailableCoaches      []CoachResponse         `json:"availableCoaches"`
	EquipmentAvailability []EquipmentAvailability `json:"equipmentAvailability"`
}

// CourtResponse корт, свободный в слоте
type CourtResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	BaseRate float64 `json:"baseRate"`
}

// CoachResponse тренер, свободный в слоте
type CoachResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EquipmentAvailability остаток позиции инвентаря в слоте
type EquipmentAvailability struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Available int    `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		courts := make([]CourtResponse, 0, len(slot.AvailableCourts))
		for _, c := range slot.AvailableCourts {
			courts = append(courts, CourtResponse{
				ID:       c.ID,
				Name:     c.Name,
				Type:     string(c.Type),
				BaseRate: c.BaseRate,
			})
		}

		coaches := make([]CoachResponse, 0, len(slot.AvailableCoaches))
		for _, c := range slot.AvailableCoaches {
			coaches = append(coaches, CoachResponse{ID: c.ID, Name: c.Name})
		}

		equipment := make([]EquipmentAvailability, 0, len(slot.EquipmentAvailability))
		for _, e := range slot.EquipmentAvailability {
			equipment = append(equipment, EquipmentAvailability{
				ID:        e.ID,
				Name:      e.Name,
				Available: e.Available,
			})
		}

		slots = append(slots, SlotResponse{
			StartTime:             slot.StartTime.Format(time.RFC3339),
			AvailableCourts:       courts,
			AvailableCoaches:      coaches,
			EquipmentAvailability: equipment,
		})
	}

	return &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
