package services

import (
	"context"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	Add(ctx context.Context, service domain.Service) error
	Replace(ctx context.Context, service domain.Service) error
	Delete(ctx context.Context, id string) ([]domain.Service, error)
}

// Describer интерфейс генератора описаний услуг
type Describer interface {
	DescribeService(ctx context.Context, name string, category domain.ServiceCategory) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
