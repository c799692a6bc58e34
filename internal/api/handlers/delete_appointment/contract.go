package delete_appointment

import (
	"context"

	"github.com/m04kA/SMC-LuxeBook/internal/service/appointments/models"
)

type AppointmentService interface {
	Delete(ctx context.Context, id string, confirmed bool) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
