package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateReference возвращается при коллизии уникального reference
	ErrDuplicateReference = errors.New("booking.repository: duplicate booking reference")

	// ErrCourtOverlap возвращается, когда exclusion constraint БД отклонил
	// пересекающееся бронирование корта
	ErrCourtOverlap = errors.New("booking.repository: overlapping court booking")

	// ErrCoachOverlap возвращается, когда exclusion constraint БД отклонил
	// пересекающееся бронирование тренера
	ErrCoachOverlap = errors.New("booking.repository: overlapping coach booking")

	// ErrCannotCancel возвращается, когда бронирование уже отменено
	ErrCannotCancel = errors.New("booking.repository: booking cannot be cancelled")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
