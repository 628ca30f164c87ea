package create_booking

import (
	"fmt"
	"strings"

	"github.com/acornglobus/court-booking-service/internal/domain"
)

// validateRequest проверяет валидность запроса создания бронирования
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserName) == "" {
		return fmt.Errorf("%w: userName is required", ErrInvalidInput)
	}

	if len(req.UserName) > domain.MaxUserNameLength {
		return fmt.Errorf("%w: userName must be at most %d characters",
			ErrInvalidInput, domain.MaxUserNameLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters",
			ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtId must be positive", ErrInvalidInput)
	}

	if req.CoachID != nil && *req.CoachID <= 0 {
		return fmt.Errorf("%w: coachId must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.StartTime.Minute() != 0 || req.StartTime.Second() != 0 || req.StartTime.Nanosecond() != 0 {
		return fmt.Errorf("%w: startTime must be aligned to a whole hour", ErrInvalidInput)
	}

	if req.DurationHrs < domain.MinDurationHrs || req.DurationHrs > domain.MaxDurationHrs {
		return fmt.Errorf("%w: durationHrs must be between %d and %d",
			ErrInvalidInput, domain.MinDurationHrs, domain.MaxDurationHrs)
	}

	// Бронирование целиком внутри рабочих часов площадки
	hour := req.StartTime.Hour()
	if hour < domain.FacilityStartHour || hour+req.DurationHrs > domain.FacilityEndHour {
		return fmt.Errorf("%w: booking must fit within facility hours %02d:00-%02d:00",
			ErrInvalidInput, domain.FacilityStartHour, domain.FacilityEndHour)
	}

	seen := make(map[int64]struct{}, len(req.Equipment))
	for _, sel := range req.Equipment {
		if sel.EquipmentID <= 0 {
			return fmt.Errorf("%w: equipmentId must be positive", ErrInvalidInput)
		}
		if sel.Quantity <= 0 {
			return fmt.Errorf("%w: equipment quantity must be positive", ErrInvalidInput)
		}
		if _, ok := seen[sel.EquipmentID]; ok {
			return fmt.Errorf("%w: duplicate equipmentId %d", ErrInvalidInput, sel.EquipmentID)
		}
		seen[sel.EquipmentID] = struct{}{}
	}

	return nil
}
