package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается, когда на слот уже есть активная запись
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrStorage возвращается при ошибках чтения/записи коллекции
	ErrStorage = errors.New("appointment.repository: storage error")
)
