package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LuxeBook/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-LuxeBook/internal/usecase/get_available_slots"
)

const (
	msgMissingServiceID = "ID услуги обязателен"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPastDate         = "нельзя записаться на прошедшую дату"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceID := query.Get("serviceId")
	if serviceID == "" {
		h.logger.Warn("GET /available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Past date: service_id=%s, date=%s", serviceID, dateStr)
			handlers.RespondBadRequest(w, msgPastDate)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: service_id=%s, date=%s, error=%v",
				serviceID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Slots retrieved successfully: service_id=%s, date=%s, slots_count=%d",
		serviceID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
