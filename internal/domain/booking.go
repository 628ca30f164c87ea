package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// EquipmentLine строка аренды инвентаря внутри бронирования
type EquipmentLine struct {
	EquipmentID int64
	Quantity    int
}

// Booking represents a confirmed court reservation.
// TotalPrice фиксируется в момент создания и никогда не пересчитывается.
type Booking struct {
	ID          int64
	Reference   string // уникальный человекочитаемый идентификатор
	UserName    string
	Contact     *string
	CourtID     int64
	CoachID     *int64
	StartTime   time.Time
	DurationHrs int
	TotalPrice  float64
	Status      BookingStatus
	Notes       *string
	CancelledAt *time.Time
	CreatedAt   time.Time

	Lines []EquipmentLine
}

// IsConfirmed сообщает, учитывается ли бронирование при проверках конфликтов
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled сообщает, можно ли отменить бронирование.
// CANCELLED — терминальный статус, обратного перехода нет.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// EquipmentQuantity возвращает количество единиц инвентаря с указанным ID
// в этом бронировании (0, если не арендован)
func (b *Booking) EquipmentQuantity(equipmentID int64) int {
	for _, line := range b.Lines {
		if line.EquipmentID == equipmentID {
			return line.Quantity
		}
	}
	return 0
}

// BookingSummary строка истории бронирований с денормализованными именами
type BookingSummary struct {
	ID          int64
	Reference   string
	UserName    string
	CourtID     int64
	CourtName   string
	CoachID     *int64
	CoachName   *string
	StartTime   time.Time
	DurationHrs int
	TotalPrice  float64
	Status      BookingStatus
	CreatedAt   time.Time

	Lines []EquipmentLine
}
