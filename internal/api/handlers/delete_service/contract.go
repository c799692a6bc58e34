package delete_service

import (
	"context"

	"github.com/m04kA/SMC-LuxeBook/internal/service/services/models"
)

type ServicesService interface {
	Delete(ctx context.Context, id string, confirmed bool) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
