package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/internal/usecase/get_available_slots"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	AddIfSlotFree(ctx context.Context, appointment domain.Appointment) error
}

// SlotsProvider интерфейс для получения слотов на дату
type SlotsProvider interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// Metrics интерфейс для метрик
type Metrics interface {
	IncBookingsCreated()
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
