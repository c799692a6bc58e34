package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает ни с одним слотом дня
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrCancelled возвращается, если запрос отменен до записи в хранилище
	ErrCancelled = errors.New("create_booking: submission cancelled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
