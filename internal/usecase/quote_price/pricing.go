package quote_price

import (
	"time"

	"github.com/acornglobus/court-booking-service/internal/domain"
)

// computeBreakdown вычисляет детализацию стоимости бронирования.
// Чистая функция входных данных: один и тот же запрос при неизменных
// справочниках дает один и тот же результат.
//
// Все подходящие активные правила применяются кумулятивно. Сумма правила
// трактуется как надбавка за час независимо от вида корректировки:
// PERCENT-правила применяются так же, как FIXED.
func computeBreakdown(
	court *domain.Court,
	coach *domain.Coach,
	equipment []*domain.Equipment,
	quantities map[int64]int,
	rules []*domain.PricingRule,
	start time.Time,
	durationHrs int,
) *Response {
	hrs := float64(durationHrs)

	resp := &Response{
		BaseCourt:   court.BaseRate * hrs,
		Adjustments: make([]Adjustment, 0, len(rules)),
	}

	// Каждое применённое правило увеличивает BaseCourt и добавляет
	// строку в Adjustments
	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		if !rule.Spec.AppliesTo(court.Type, start) {
			continue
		}
		amount := rule.Spec.RuleAmount() * hrs
		resp.BaseCourt += amount
		resp.Adjustments = append(resp.Adjustments, Adjustment{
			RuleID: rule.ID,
			Label:  rule.Name,
			Amount: amount,
		})
	}

	for _, item := range equipment {
		qty := quantities[item.ID]
		resp.EquipmentTotal += item.BaseFee * float64(qty) * hrs
	}

	if coach != nil {
		resp.CoachTotal = coach.RatePerHour * hrs
	}

	resp.Total = resp.BaseCourt + resp.EquipmentTotal + resp.CoachTotal

	return resp
}
