package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-LuxeBook/internal/api/handlers"
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

// Handle GET /api/v1/services и GET /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET %s - Failed to list services: error=%v", r.URL.Path, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET %s - Services retrieved successfully: count=%d", r.URL.Path, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
