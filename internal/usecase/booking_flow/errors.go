package booking_flow

import "errors"

var (
	// ErrIllegalTransition возвращается, если событие недопустимо в текущем состоянии
	ErrIllegalTransition = errors.New("booking_flow: illegal transition")

	// ErrSlotNotSelected возвращается при переходе к подтверждению без выбранного слота
	ErrSlotNotSelected = errors.New("booking_flow: slot is not selected")

	// ErrSlotNotAvailable возвращается, если слот занят или не предлагается на эту дату
	ErrSlotNotAvailable = errors.New("booking_flow: slot is not available")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("booking_flow: service not found")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = errors.New("booking_flow: invalid date")

	// ErrInvalidDetails возвращается, если не заполнены обязательные поля клиента
	ErrInvalidDetails = errors.New("booking_flow: invalid customer details")

	// ErrSubmissionInFlight возвращается, пока предыдущая отправка не завершилась
	ErrSubmissionInFlight = errors.New("booking_flow: submission in flight")

	// ErrSubmissionCancelled возвращается, если отправка прервана отменой запроса до записи
	ErrSubmissionCancelled = errors.New("booking_flow: submission cancelled")

	// ErrFlowNotFound возвращается, если сценарий не найден или уже удален
	ErrFlowNotFound = errors.New("booking_flow: flow not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("booking_flow: internal error")
)
