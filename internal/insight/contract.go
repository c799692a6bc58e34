package insight

import (
	"context"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
)

// Describer генерирует описание услуги для формы администратора
type Describer interface {
	DescribeService(ctx context.Context, name string, category domain.ServiceCategory) string
}

// TrendSummarizer генерирует строку-инсайт для панели администратора
type TrendSummarizer interface {
	SummarizeTrend(ctx context.Context, appointmentsCount int, revenue float64) string
}

// Generator интерфейс для внешнего генератора текстов
type Generator interface {
	DescribeService(ctx context.Context, name string, category domain.ServiceCategory) (string, error)
	SummarizeTrend(ctx context.Context, appointmentsCount int, revenue float64) (string, error)
}

// Metrics интерфейс для учета обращений к генератору
type Metrics interface {
	ObserveInsight(operation, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Provider обе возможности генератора
type Provider interface {
	Describer
	TrendSummarizer
}
