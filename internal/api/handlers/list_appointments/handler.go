package list_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-LuxeBook/internal/api/handlers"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/appointments - Failed to list appointments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved successfully: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
