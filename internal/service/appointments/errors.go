package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("invalid appointment status transition")

	// ErrConfirmationRequired возвращается при удалении без явного подтверждения
	ErrConfirmationRequired = errors.New("deletion must be confirmed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
