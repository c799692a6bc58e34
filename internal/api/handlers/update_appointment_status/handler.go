package update_appointment_status

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LuxeBook/internal/api/handlers"
	"github.com/m04kA/SMC-LuxeBook/internal/service/appointments"
	"github.com/m04kA/SMC-LuxeBook/internal/service/appointments/models"
)

const (
	msgNotFound          = "запись не найдена"
	msgInvalidTransition = "переход статуса недоступен"
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

// Confirm PATCH /api/v1/admin/appointments/{appointmentId}/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "PATCH /admin/appointments/{id}/confirm", h.service.Confirm)
}

// Cancel PATCH /api/v1/admin/appointments/{appointmentId}/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "PATCH /admin/appointments/{id}/cancel", h.service.Cancel)
}

func (h *Handler) handle(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	change func(ctx context.Context, id string) (*models.AppointmentListResponse, error),
) {
	appointmentID := mux.Vars(r)["appointmentId"]

	result, err := change(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("%s - Appointment not found: appointment_id=%s", route, appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("%s - Invalid transition: appointment_id=%s, error=%v", route, appointmentID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("%s - Failed to change status: appointment_id=%s, error=%v", route, appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Status changed: appointment_id=%s", route, appointmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
