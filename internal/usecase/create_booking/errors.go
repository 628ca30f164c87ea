package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrCourtNotFound корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrCoachNotFound тренер не найден
	ErrCoachNotFound = errors.New("coach not found")

	// ErrEquipmentNotFound инвентарь не найден
	ErrEquipmentNotFound = errors.New("equipment not found")

	// ErrCourtConflict корт уже занят в запрошенном интервале
	ErrCourtConflict = errors.New("court conflict")

	// ErrCoachConflict тренер уже занят в запрошенном интервале
	ErrCoachConflict = errors.New("coach conflict")

	// ErrEquipmentConflict запрошено больше инвентаря, чем осталось
	ErrEquipmentConflict = errors.New("equipment conflict")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)

// EquipmentConflictError нехватка инвентаря в запрошенном интервале.
// Несет название позиции и остаток для сообщения пользователю.
type EquipmentConflictError struct {
	Name      string
	Remaining int
}

func (e *EquipmentConflictError) Error() string {
	return fmt.Sprintf("equipment conflict: only %d of %s left", e.Remaining, e.Name)
}

func (e *EquipmentConflictError) Unwrap() error {
	return ErrEquipmentConflict
}
