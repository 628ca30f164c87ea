package models

import (
	"github.com/acornglobus/court-booking-service/internal/domain"
)

// Request модели

// CreateCourtRequest запрос на создание корта
type CreateCourtRequest struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Type     string  `json:"type"`
	BaseRate float64 `json:"baseRate"`
}

// UpdateCourtRequest запрос на частичное обновление корта
type UpdateCourtRequest struct {
	Name     *string  `json:"name,omitempty"`
	Location *string  `json:"location,omitempty"`
	Type     *string  `json:"type,omitempty"`
	BaseRate *float64 `json:"baseRate,omitempty"`
	IsActive *bool    `json:"isActive,omitempty"`
}

// WindowPayload еженедельное окно доступности тренера
type WindowPayload struct {
	DayOfWeek int `json:"dayOfWeek"`
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// CreateCoachRequest запрос на создание тренера
type CreateCoachRequest struct {
	Name        string          `json:"name"`
	Bio         string          `json:"bio"`
	City        string          `json:"city"`
	RatePerHour float64         `json:"ratePerHour"`
	Windows     []WindowPayload `json:"windows"`
}

// UpdateCoachRequest запрос на частичное обновление тренера.
// Windows заменяются целиком, если переданы.
type UpdateCoachRequest struct {
	Name        *string          `json:"name,omitempty"`
	Bio         *string          `json:"bio,omitempty"`
	City        *string          `json:"city,omitempty"`
	RatePerHour *float64         `json:"ratePerHour,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
	Windows     *[]WindowPayload `json:"windows,omitempty"`
}

// CreateEquipmentRequest запрос на создание позиции инвентаря
type CreateEquipmentRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	BaseFee  float64 `json:"baseFee"`
}

// UpdateEquipmentRequest запрос на частичное обновление инвентаря
type UpdateEquipmentRequest struct {
	Name     *string  `json:"name,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
	BaseFee  *float64 `json:"baseFee,omitempty"`
	IsActive *bool    `json:"isActive,omitempty"`
}

// CreateRuleRequest запрос на создание правила ценообразования.
// StartHour и EndHour обязательны только для PEAK_HOUR.
type CreateRuleRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	RuleType    string  `json:"ruleType"`
	Adjustment  string  `json:"adjustment"`
	Amount      float64 `json:"amount"`
	StartHour   *int    `json:"startHour,omitempty"`
	EndHour     *int    `json:"endHour,omitempty"`
}

// UpdateRuleRequest запрос на частичное обновление правила.
// Передача RuleType заменяет спецификацию правила целиком.
type UpdateRuleRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	RuleType    *string  `json:"ruleType,omitempty"`
	Adjustment  *string  `json:"adjustment,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	StartHour   *int     `json:"startHour,omitempty"`
	EndHour     *int     `json:"endHour,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// Response модели

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Type     string  `json:"type"`
	BaseRate float64 `json:"baseRate"`
	IsActive bool    `json:"isActive"`
}

// CoachResponse ответ с данными тренера
type CoachResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Bio         string          `json:"bio"`
	City        string          `json:"city"`
	RatePerHour float64         `json:"ratePerHour"`
	IsActive    bool            `json:"isActive"`
	Windows     []WindowPayload `json:"windows"`
}

// EquipmentResponse ответ с данными позиции инвентаря
type EquipmentResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	BaseFee  float64 `json:"baseFee"`
	IsActive bool    `json:"isActive"`
}

// RuleResponse ответ с данными правила ценообразования
type RuleResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	RuleType    string  `json:"ruleType"`
	Adjustment  string  `json:"adjustment"`
	Amount      float64 `json:"amount"`
	StartHour   *int    `json:"startHour,omitempty"`
	EndHour     *int    `json:"endHour,omitempty"`
	IsActive    bool    `json:"isActive"`
}

// FromDomainCourt конвертирует domain модель в response
func FromDomainCourt(c *domain.Court) *CourtResponse {
	return &CourtResponse{
		ID:       c.ID,
		Name:     c.Name,
		Location: c.Location,
		Type:     string(c.Type),
		BaseRate: c.BaseRate,
		IsActive: c.IsActive,
	}
}

// FromDomainCourts конвертирует список domain моделей в response
func FromDomainCourts(courts []*domain.Court) []CourtResponse {
	result := make([]CourtResponse, 0, len(courts))
	for _, c := range courts {
		result = append(result, *FromDomainCourt(c))
	}
	return result
}

// FromDomainCoach конвертирует domain модель в response
func FromDomainCoach(c *domain.Coach) *CoachResponse {
	windows := make([]WindowPayload, 0, len(c.Windows))
	for _, w := range c.Windows {
		windows = append(windows, WindowPayload{
			DayOfWeek: w.DayOfWeek,
			StartHour: w.StartHour,
			EndHour:   w.EndHour,
		})
	}
	return &CoachResponse{
		ID:          c.ID,
		Name:        c.Name,
		Bio:         c.Bio,
		City:        c.City,
		RatePerHour: c.RatePerHour,
		IsActive:    c.IsActive,
		Windows:     windows,
	}
}

// FromDomainCoaches конвертирует список domain моделей в response
func FromDomainCoaches(coaches []*domain.Coach) []CoachResponse {
	result := make([]CoachResponse, 0, len(coaches))
	for _, c := range coaches {
		result = append(result, *FromDomainCoach(c))
	}
	return result
}

// FromDomainEquipment конвертирует domain модель в response
func FromDomainEquipment(e *domain.Equipment) *EquipmentResponse {
	return &EquipmentResponse{
		ID:       e.ID,
		Name:     e.Name,
		Quantity: e.Quantity,
		BaseFee:  e.BaseFee,
		IsActive: e.IsActive,
	}
}

// FromDomainEquipmentList конвертирует список domain моделей в response
func FromDomainEquipmentList(items []*domain.Equipment) []EquipmentResponse {
	result := make([]EquipmentResponse, 0, len(items))
	for _, e := range items {
		result = append(result, *FromDomainEquipment(e))
	}
	return result
}

// FromDomainRule конвертирует domain модель в response
func FromDomainRule(r *domain.PricingRule) *RuleResponse {
	resp := &RuleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		RuleType:    string(r.Spec.Type()),
		Adjustment:  string(r.Spec.AdjustmentKind()),
		Amount:      r.Spec.RuleAmount(),
		IsActive:    r.IsActive,
	}
	if peak, ok := r.Spec.(domain.PeakHourRule); ok {
		resp.StartHour = &peak.StartHour
		resp.EndHour = &peak.EndHour
	}
	return resp
}

// FromDomainRules конвертирует список domain моделей в response
func FromDomainRules(rules []*domain.PricingRule) []RuleResponse {
	result := make([]RuleResponse, 0, len(rules))
	for _, r := range rules {
		result = append(result, *FromDomainRule(r))
	}
	return result
}

// ToDomainWindows конвертирует payload окон в domain модели
func ToDomainWindows(payload []WindowPayload) []domain.AvailabilityWindow {
	windows := make([]domain.AvailabilityWindow, 0, len(payload))
	for _, w := range payload {
		windows = append(windows, domain.AvailabilityWindow{
			DayOfWeek: w.DayOfWeek,
			StartHour: w.StartHour,
			EndHour:   w.EndHour,
		})
	}
	return windows
}
