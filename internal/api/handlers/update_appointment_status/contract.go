package update_appointment_status

import (
	"context"

	"github.com/m04kA/SMC-LuxeBook/internal/service/appointments/models"
)

type AppointmentService interface {
	Confirm(ctx context.Context, id string) (*models.AppointmentListResponse, error)
	Cancel(ctx context.Context, id string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
