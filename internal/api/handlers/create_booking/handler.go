package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LuxeBook/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-LuxeBook/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "нужно указать имя и телефон клиента"
	msgSlotNotAvailable   = "выбранный временной слот уже занят"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidBookingDate = "некорректная дата записи"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgCancelled          = "запрос отменен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		var pe *parseError
		if errors.As(err, &pe) && pe.field == "time" {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: service_id=%s, date=%s, time=%s",
				req.ServiceID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid booking date: service_id=%s, date=%s", req.ServiceID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: service_id=%s, time=%s", req.ServiceID, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrCancelled):
			h.logger.Warn("POST /appointments - Request cancelled: service_id=%s", req.ServiceID)
			handlers.RespondBadRequest(w, msgCancelled)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: service_id=%s, error=%v",
				req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, service_id=%s, date=%s, time=%s",
		result.ID, result.ServiceID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
