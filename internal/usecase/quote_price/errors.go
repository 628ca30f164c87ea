package quote_price

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrCourtNotFound корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrCoachNotFound тренер не найден
	ErrCoachNotFound = errors.New("coach not found")

	// ErrEquipmentNotFound инвентарь не найден
	ErrEquipmentNotFound = errors.New("equipment not found")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
