package get_availability

import (
	"time"

	"github.com/acornglobus/court-booking-service/internal/domain"
)

// computeSlots вычисляет доступность ресурсов для каждого часового слота
// даты. Бронирования дня уже загружены целиком: стоимость ограничена
// O(слоты × бронирования дня), без повторных походов в хранилище.
func computeSlots(
	date time.Time,
	bookings []*domain.Booking,
	courts []*domain.Court,
	coaches []*domain.Coach,
	equipment []*domain.Equipment,
) []domain.SlotAvailability {
	slots := make([]domain.SlotAvailability, 0, domain.FacilityEndHour-domain.FacilityStartHour)

	for hour := domain.FacilityStartHour; hour < domain.FacilityEndHour; hour += domain.SlotDurationHrs {
		slotStart := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())

		slots = append(slots, domain.SlotAvailability{
			StartTime:             slotStart,
			AvailableCourts:       availableCourts(slotStart, courts, bookings),
			AvailableCoaches:      availableCoaches(date, hour, slotStart, coaches, bookings),
			EquipmentAvailability: equipmentStock(slotStart, equipment, bookings),
		})
	}

	return slots
}

// availableCourts возвращает корты без пересекающихся бронирований в слоте
func availableCourts(slotStart time.Time, courts []*domain.Court, bookings []*domain.Booking) []domain.CourtOption {
	result := make([]domain.CourtOption, 0, len(courts))

	for _, court := range courts {
		if hasCourtConflict(court.ID, slotStart, bookings) {
			continue
		}
		result = append(result, domain.CourtOption{
			ID:       court.ID,
			Name:     court.Name,
			Type:     court.Type,
			BaseRate: court.BaseRate,
		})
	}

	return result
}

// availableCoaches возвращает тренеров, у которых (a) недельное окно
// покрывает слот и (b) нет пересекающегося бронирования
func availableCoaches(date time.Time, hour int, slotStart time.Time, coaches []*domain.Coach, bookings []*domain.Booking) []domain.CoachOption {
	result := make([]domain.CoachOption, 0, len(coaches))

	for _, coach := range coaches {
		if !coach.AvailableAt(date, hour) {
			continue
		}
		if hasCoachConflict(coach.ID, slotStart, bookings) {
			continue
		}
		result = append(result, domain.CoachOption{ID: coach.ID, Name: coach.Name})
	}

	return result
}

// equipmentStock возвращает остаток каждой позиции инвентаря в слоте:
// quantity минус суммарно занятое пересекающимися бронированиями,
// не меньше нуля
func equipmentStock(slotStart time.Time, equipment []*domain.Equipment, bookings []*domain.Booking) []domain.EquipmentStock {
	result := make([]domain.EquipmentStock, 0, len(equipment))

	for _, item := range equipment {
		used := 0
		for _, b := range bookings {
			if !domain.Overlaps(slotStart, domain.SlotDurationHrs, b.StartTime, b.DurationHrs) {
				continue
			}
			used += b.EquipmentQuantity(item.ID)
		}

		available := item.Quantity - used
		if available < 0 {
			available = 0
		}

		result = append(result, domain.EquipmentStock{
			ID:        item.ID,
			Name:      item.Name,
			Available: available,
		})
	}

	return result
}

func hasCourtConflict(courtID int64, slotStart time.Time, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.CourtID != courtID {
			continue
		}
		if domain.Overlaps(slotStart, domain.SlotDurationHrs, b.StartTime, b.DurationHrs) {
			return true
		}
	}
	return false
}

func hasCoachConflict(coachID int64, slotStart time.Time, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.CoachID == nil || *b.CoachID != coachID {
			continue
		}
		if domain.Overlaps(slotStart, domain.SlotDurationHrs, b.StartTime, b.DurationHrs) {
			return true
		}
	}
	return false
}
