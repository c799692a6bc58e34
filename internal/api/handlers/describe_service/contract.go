package describe_service

import (
	"context"

	"github.com/m04kA/SMC-LuxeBook/internal/service/services/models"
)

type ServicesService interface {
	GenerateDescription(ctx context.Context, req *models.DescribeRequest) (*models.DescriptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
