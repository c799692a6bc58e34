package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-LuxeBook/internal/service/dashboard/models"
)

type DashboardService interface {
	Load(ctx context.Context) (*models.DashboardResponse, error)
	Insight() models.InsightResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
