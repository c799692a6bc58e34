package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LuxeBook/internal/api/handlers"
	"github.com/m04kA/SMC-LuxeBook/internal/service/appointments"
)

const (
	msgConfirmationRequired = "удаление записи нужно подтвердить (confirm=true)"
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

// Handle DELETE /api/v1/admin/appointments/{appointmentId}?confirm=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	result, err := h.service.Delete(r.Context(), appointmentID, handlers.IsConfirmed(r))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrConfirmationRequired):
			h.logger.Warn("DELETE /admin/appointments/{id} - Not confirmed: appointment_id=%s", appointmentID)
			handlers.RespondPreconditionRequired(w, msgConfirmationRequired)

		default:
			h.logger.Error("DELETE /admin/appointments/{id} - Failed to delete appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/appointments/{id} - Appointment deleted: appointment_id=%s, remaining=%d",
		appointmentID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
