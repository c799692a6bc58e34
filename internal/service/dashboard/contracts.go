package dashboard

import (
	"context"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context) ([]domain.Appointment, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
}

// TrendSummarizer интерфейс генератора инсайта; ошибок не возвращает
type TrendSummarizer interface {
	SummarizeTrend(ctx context.Context, appointmentsCount int, revenue float64) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
