package domain

// Часы работы площадки (локальное время площадки).
// Слоты генерируются в интервале [FacilityStartHour, FacilityEndHour).
const (
	FacilityStartHour = 6
	FacilityEndHour   = 22
)

// SlotDurationHrs фиксированная длительность слота в часах
const SlotDurationHrs = 1

// Business validation constants
const (
	MinDurationHrs = 1
	MaxDurationHrs = FacilityEndHour - FacilityStartHour

	MaxUserNameLength = 120
	MaxNotesLength    = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
