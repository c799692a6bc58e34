package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListByDate получает все записи на дату, включая отмененные
	ListByDate(ctx context.Context, date types.DateString) ([]domain.Appointment, error)
}

// SettingsRepository интерфейс репозитория настроек заведения
type SettingsRepository interface {
	Get(ctx context.Context) (domain.BusinessSettings, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
