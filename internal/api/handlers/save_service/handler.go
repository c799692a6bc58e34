package save_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LuxeBook/internal/api/handlers"
	"github.com/m04kA/SMC-LuxeBook/internal/service/services"
	"github.com/m04kA/SMC-LuxeBook/internal/service/services/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidService     = "некорректные данные услуги"
	msgServiceNotFound    = "услуга не найдена"
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

// Create POST /api/v1/admin/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/services", "", err)
		return
	}

	h.logger.Info("POST /admin/services - Service created: service_id=%s, name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/admin/services/{serviceId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), serviceID, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/services/{id}", serviceID, err)
		return
	}

	h.logger.Info("PUT /admin/services/{id} - Service updated: service_id=%s", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route, serviceID string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		h.logger.Warn("%s - Invalid service: service_id=%s, error=%v", route, serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidService)

	case errors.Is(err, services.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: service_id=%s", route, serviceID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	default:
		h.logger.Error("%s - Failed to save service: service_id=%s, error=%v", route, serviceID, err)
		handlers.RespondInternalError(w)
	}
}
