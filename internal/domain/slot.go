package domain

import "time"

// CourtOption корт, свободный в слоте
type CourtOption struct {
	ID       int64
	Name     string
	Type     CourtType
	BaseRate float64
}

// CoachOption тренер, свободный в слоте
type CoachOption struct {
	ID   int64
	Name string
}

// EquipmentStock остаток инвентаря в слоте
type EquipmentStock struct {
	ID        int64
	Name      string
	Available int
}

// SlotAvailability доступность ресурсов в одном часовом слоте
type SlotAvailability struct {
	StartTime             time.Time
	AvailableCourts       []CourtOption
	AvailableCoaches      []CoachOption
	EquipmentAvailability []EquipmentStock
}

// HasFreeCourt сообщает, есть ли в слоте хотя бы один свободный корт
func (s *SlotAvailability) HasFreeCourt() bool {
	return len(s.AvailableCourts) > 0
}
