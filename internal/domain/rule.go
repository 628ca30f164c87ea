package domain

import "time"

// RuleType represents the kind of a pricing rule
type RuleType string

const (
	RulePeakHour      RuleType = "PEAK_HOUR"
	RuleWeekend       RuleType = "WEEKEND"
	RuleIndoorPremium RuleType = "INDOOR_PREMIUM"
)

// Adjustment represents how a rule amount is meant to be applied
type Adjustment string

const (
	AdjustmentFixed   Adjustment = "FIXED"
	AdjustmentPercent Adjustment = "PERCENT"
)

// Valid сообщает, является ли значение допустимым видом корректировки
func (a Adjustment) Valid() bool {
	return a == AdjustmentFixed || a == AdjustmentPercent
}

// RuleSpec закрытое множество вариантов правила ценообразования.
// Конкретные типы: PeakHourRule, WeekendRule, IndoorPremiumRule.
type RuleSpec interface {
	// Type возвращает вид правила
	Type() RuleType

	// AppliesTo сообщает, применяется ли правило к бронированию
	// на указанном типе корта с указанным временем начала
	AppliesTo(courtType CourtType, start time.Time) bool

	// RuleAmount возвращает сумму корректировки (за час)
	RuleAmount() float64

	// AdjustmentKind возвращает вид корректировки (FIXED/PERCENT)
	AdjustmentKind() Adjustment

	sealed()
}

// PeakHourRule наценка за пиковые часы.
// Применяется, если час начала попадает в [StartHour, EndHour).
type PeakHourRule struct {
	StartHour  int
	EndHour    int
	Adjustment Adjustment
	Amount     float64
}

func (r PeakHourRule) Type() RuleType { return RulePeakHour }

func (r PeakHourRule) AppliesTo(_ CourtType, start time.Time) bool {
	hour := start.Hour()
	return hour >= r.StartHour && hour < r.EndHour
}

func (r PeakHourRule) RuleAmount() float64        { return r.Amount }
func (r PeakHourRule) AdjustmentKind() Adjustment { return r.Adjustment }
func (r PeakHourRule) sealed()                    {}

// WeekendRule наценка за выходные (суббота и воскресенье)
type WeekendRule struct {
	Adjustment Adjustment
	Amount     float64
}

func (r WeekendRule) Type() RuleType { return RuleWeekend }

func (r WeekendRule) AppliesTo(_ CourtType, start time.Time) bool {
	day := start.Weekday()
	return day == time.Saturday || day == time.Sunday
}

func (r WeekendRule) RuleAmount() float64        { return r.Amount }
func (r WeekendRule) AdjustmentKind() Adjustment { return r.Adjustment }
func (r WeekendRule) sealed()                    {}

// IndoorPremiumRule наценка за крытый корт
type IndoorPremiumRule struct {
	Adjustment Adjustment
	Amount     float64
}

func (r IndoorPremiumRule) Type() RuleType { return RuleIndoorPremium }

func (r IndoorPremiumRule) AppliesTo(courtType CourtType, _ time.Time) bool {
	return courtType == CourtIndoor
}

func (r IndoorPremiumRule) RuleAmount() float64        { return r.Amount }
func (r IndoorPremiumRule) AdjustmentKind() Adjustment { return r.Adjustment }
func (r IndoorPremiumRule) sealed()                    {}

// PricingRule административно управляемое правило ценообразования.
// Все активные подходящие правила применяются кумулятивно.
type PricingRule struct {
	ID          int64
	Name        string
	Description string
	Spec        RuleSpec
	IsActive    bool
}
