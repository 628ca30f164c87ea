package create_booking

import (
	"fmt"

	"github.com/acornglobus/court-booking-service/internal/domain"
)

// checkConflicts проверяет запрошенный интервал против подтвержденных
// бронирований дня: корт, тренер, затем инвентарь. Порядок проверок
// определяет, какой из нескольких конфликтов будет возвращен.
func checkConflicts(req *Request, bookings []*domain.Booking, equipment []*domain.Equipment) error {
	for _, b := range bookings {
		if b.CourtID != req.CourtID {
			continue
		}
		if domain.Overlaps(req.StartTime, req.DurationHrs, b.StartTime, b.DurationHrs) {
			return fmt.Errorf("%w: court %d already booked", ErrCourtConflict, req.CourtID)
		}
	}

	if req.CoachID != nil {
		for _, b := range bookings {
			if b.CoachID == nil || *b.CoachID != *req.CoachID {
				continue
			}
			if domain.Overlaps(req.StartTime, req.DurationHrs, b.StartTime, b.DurationHrs) {
				return fmt.Errorf("%w: coach %d already booked", ErrCoachConflict, *req.CoachID)
			}
		}
	}

	byID := make(map[int64]*domain.Equipment, len(equipment))
	for _, item := range equipment {
		byID[item.ID] = item
	}

	for _, sel := range req.Equipment {
		item := byID[sel.EquipmentID]

		used := 0
		for _, b := range bookings {
			if !domain.Overlaps(req.StartTime, req.DurationHrs, b.StartTime, b.DurationHrs) {
				continue
			}
			used += b.EquipmentQuantity(sel.EquipmentID)
		}

		remaining := item.Quantity - used
		if remaining < 0 {
			remaining = 0
		}
		if sel.Quantity > remaining {
			return &EquipmentConflictError{Name: item.Name, Remaining: remaining}
		}
	}

	return nil
}
