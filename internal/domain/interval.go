package domain

import "time"

// Overlaps сообщает, пересекаются ли два интервала (start, duration в часах).
// Интервалы полуоткрытые [start, start+duration): общая граница не считается
// пересечением, и интервал нулевой длины не пересекается с интервалом,
// начинающимся в той же точке.
func Overlaps(startA time.Time, durationA int, startB time.Time, durationB int) bool {
	endA := startA.Add(time.Duration(durationA) * time.Hour)
	endB := startB.Add(time.Duration(durationB) * time.Hour)
	return startA.Before(endB) && startB.Before(endA)
}
