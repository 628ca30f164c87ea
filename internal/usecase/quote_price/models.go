package quote_price

import "time"

// Request модель запроса расчета стоимости
type Request struct {
	CourtID     int64
	CoachID     *int64
	Equipment   []Selection
	StartTime   time.Time
	DurationHrs int
}

// Selection выбранная позиция инвентаря
type Selection struct {
	EquipmentID int64
	Quantity    int
}

// Response модель ответа: детализация стоимости
type Response struct {
	BaseCourt      float64
	Adjustments    []Adjustment
	EquipmentTotal float64
	CoachTotal     float64
	Total          float64
}

// Adjustment примененная корректировка правила ценообразования
type Adjustment struct {
	RuleID int64
	Label  string
	Amount float64
}
