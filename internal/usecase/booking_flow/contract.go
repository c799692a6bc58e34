package booking_flow

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/internal/usecase/create_booking"
	"github.com/m04kA/SMC-LuxeBook/internal/usecase/get_available_slots"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// SlotsProvider интерфейс для получения слотов на дату
type SlotsProvider interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// BookingCreator интерфейс для создания записи
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// Metrics интерфейс для метрик переходов
type Metrics interface {
	ObserveFlowTransition(from, event, outcome string)
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
