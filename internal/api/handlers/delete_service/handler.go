package delete_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LuxeBook/internal/api/handlers"
	"github.com/m04kA/SMC-LuxeBook/internal/service/services"
)

const (
	msgConfirmationRequired = "удаление услуги нужно подтвердить (confirm=true)"
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

// Handle DELETE /api/v1/admin/services/{serviceId}?confirm=true
// Удаление отсутствующей услуги не считается ошибкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	result, err := h.service.Delete(r.Context(), serviceID, handlers.IsConfirmed(r))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConfirmationRequired):
			h.logger.Warn("DELETE /admin/services/{id} - Not confirmed: service_id=%s", serviceID)
			handlers.RespondPreconditionRequired(w, msgConfirmationRequired)

		default:
			h.logger.Error("DELETE /admin/services/{id} - Failed to delete service: service_id=%s, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/services/{id} - Service deleted: service_id=%s, remaining=%d",
		serviceID, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
