package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается, если дата уже прошла
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidSettings возвращается, если часы работы в настройках не в формате HH:MM
	ErrInvalidSettings = errors.New("business hours are malformed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
