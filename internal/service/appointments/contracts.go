package appointments

import (
	"context"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context) ([]domain.Appointment, error)
	Modify(ctx context.Context, id string, fn func(appointment *domain.Appointment) error) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
