package catalog

import (
	"fmt"
	"strings"

	"github.com/acornglobus/court-booking-service/internal/domain"
	"github.com/acornglobus/court-booking-service/internal/service/catalog/models"
)

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return nil
}

func parseCourtType(value string) (domain.CourtType, error) {
	courtType := domain.CourtType(value)
	if !courtType.Valid() {
		return "", fmt.Errorf("%w: unknown court type %q", ErrInvalidInput, value)
	}
	return courtType, nil
}

func parseAdjustment(value string) (domain.Adjustment, error) {
	adjustment := domain.Adjustment(value)
	if !adjustment.Valid() {
		return "", fmt.Errorf("%w: unknown adjustment %q", ErrInvalidInput, value)
	}
	return adjustment, nil
}

func validateWindows(windows []models.WindowPayload) error {
	for _, w := range windows {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
		}
		if w.StartHour < domain.FacilityStartHour || w.EndHour > domain.FacilityEndHour {
			return fmt.Errorf("%w: window must fit within facility hours %02d:00-%02d:00",
				ErrInvalidInput, domain.FacilityStartHour, domain.FacilityEndHour)
		}
		if w.StartHour >= w.EndHour {
			return fmt.Errorf("%w: window startHour must be before endHour", ErrInvalidInput)
		}
	}
	return nil
}

// buildRuleSpec собирает спецификацию правила из плоских полей запроса
func buildRuleSpec(ruleType string, adjustment string, amount float64, startHour, endHour *int) (domain.RuleSpec, error) {
	adj, err := parseAdjustment(adjustment)
	if err != nil {
		return nil, err
	}

	if amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	switch domain.RuleType(ruleType) {
	case domain.RulePeakHour:
		if startHour == nil || endHour == nil {
			return nil, fmt.Errorf("%w: startHour and endHour are required for %s", ErrInvalidInput, domain.RulePeakHour)
		}
		if *startHour >= *endHour {
			return nil, fmt.Errorf("%w: startHour must be before endHour", ErrInvalidInput)
		}
		if *startHour < 0 || *endHour > 24 {
			return nil, fmt.Errorf("%w: rule hours must be within 0-24", ErrInvalidInput)
		}
		return domain.PeakHourRule{
			StartHour:  *startHour,
			EndHour:    *endHour,
			Adjustment: adj,
			Amount:     amount,
		}, nil
	case domain.RuleWeekend:
		return domain.WeekendRule{Adjustment: adj, Amount: amount}, nil
	case domain.RuleIndoorPremium:
		return domain.IndoorPremiumRule{Adjustment: adj, Amount: amount}, nil
	default:
		return nil, fmt.Errorf("%w: unknown rule type %q", ErrInvalidInput, ruleType)
	}
}
