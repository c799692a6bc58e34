package describe_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LuxeBook/internal/api/handlers"
	"github.com/m04kA/SMC-LuxeBook/internal/service/services"
	"github.com/m04kA/SMC-LuxeBook/internal/service/services/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "нужно название и категория услуги"
)

type Handler struct {
	service ServicesService
	logger  Logger
}

func NewHandler(service ServicesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/services/describe
// Генератор не возвращает ошибок: при сбое в ответе будет текст-заглушка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.DescribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services/describe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.GenerateDescription(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			h.logger.Warn("POST /admin/services/describe - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/services/describe - Failed to describe service: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/services/describe - Description generated: name=%s, length=%d",
		req.Name, len(result.Description))
	handlers.RespondJSON(w, http.StatusOK, result)
}
