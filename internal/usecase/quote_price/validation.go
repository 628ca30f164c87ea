package quote_price

import (
	"fmt"

	"github.com/acornglobus/court-booking-service/internal/domain"
)

// validateRequest проверяет валидность запроса расчета стоимости
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
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

	if req.DurationHrs < domain.MinDurationHrs || req.DurationHrs > domain.MaxDurationHrs {
		return fmt.Errorf("%w: durationHrs must be between %d and %d",
			ErrInvalidInput, domain.MinDurationHrs, domain.MaxDurationHrs)
	}

	for _, sel := range req.Equipment {
		if sel.EquipmentID <= 0 {
			return fmt.Errorf("%w: equipmentId must be positive", ErrInvalidInput)
		}
		if sel.Quantity <= 0 {
			return fmt.Errorf("%w: equipment quantity must be positive", ErrInvalidInput)
		}
	}

	return nil
}
