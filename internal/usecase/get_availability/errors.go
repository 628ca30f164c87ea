package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при ошибках доступа к данным
	ErrInternal = errors.New("get_availability: internal error")
)
