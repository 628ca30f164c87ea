package domain

import "time"

// AvailabilityWindow еженедельное окно доступности тренера.
// Часы полуоткрытые: [StartHour, EndHour), локальное время площадки.
type AvailabilityWindow struct {
	DayOfWeek int // 0 = воскресенье ... 6 = суббота
	StartHour int
	EndHour   int
}

// Covers сообщает, покрывает ли окно часовой слот [hour, hour+SlotDurationHrs)
// в указанный день недели
func (w AvailabilityWindow) Covers(dayOfWeek, hour int) bool {
	return w.DayOfWeek == dayOfWeek &&
		hour >= w.StartHour &&
		hour+SlotDurationHrs <= w.EndHour
}

// Coach represents a bookable coach with weekly availability windows
type Coach struct {
	ID          int64
	Name        string
	Bio         string
	City        string
	RatePerHour float64
	IsActive    bool
	Windows     []AvailabilityWindow
}

// AvailableAt сообщает, доступен ли тренер в часовой слот указанной даты
// по своему недельному расписанию (без учёта существующих бронирований)
func (c *Coach) AvailableAt(date time.Time, hour int) bool {
	dayOfWeek := int(date.Weekday())
	for _, w := range c.Windows {
		if w.Covers(dayOfWeek, hour) {
			return true
		}
	}
	return false
}
