package insight

import (
	"context"
	"strings"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
)

// New возвращает Fallback поверх генератора, либо Disabled, если генератор не настроен.
// Ожидается именно nil-интерфейс, а не типизированный nil-указатель.
func New(gen Generator, metrics Metrics, logger Logger) Provider {
	if gen == nil {
		logger.Warn("insight: text generator is not configured, AI features are disabled")
		return NewDisabled(metrics)
	}
	return &Fallback{gen: gen, metrics: metrics, logger: logger}
}

// Disabled реализация без внешнего генератора
type Disabled struct {
	metrics Metrics
}

// NewDisabled создает выключенную реализацию
func NewDisabled(metrics Metrics) *Disabled {
	return &Disabled{metrics: metrics}
}

func (d *Disabled) DescribeService(_ context.Context, _ string, _ domain.ServiceCategory) string {
	d.observe(OperationDescribe)
	return MsgNotConfigured
}

func (d *Disabled) SummarizeTrend(_ context.Context, _ int, _ float64) string {
	d.observe(OperationSummarize)
	return ""
}

func (d *Disabled) observe(op string) {
	if d.metrics != nil {
		d.metrics.ObserveInsight(op, OutcomeDisabled)
	}
}

// Fallback оборачивает генератор: ошибки и пустые ответы заменяются фиксированными текстами
type Fallback struct {
	gen     Generator
	metrics Metrics
	logger  Logger
}

// DescribeService никогда не возвращает ошибку
func (f *Fallback) DescribeService(ctx context.Context, name string, category domain.ServiceCategory) string {
	text, err := f.gen.DescribeService(ctx, name, category)
	if err != nil {
		f.logger.Warn("insight: DescribeService failed for name=%q: %v", name, err)
		f.observe(OperationDescribe, OutcomeError)
		return MsgDescriptionFailed
	}

	text = strings.TrimSpace(text)
	if text == "" {
		f.observe(OperationDescribe, OutcomeEmpty)
		return MsgDescriptionNotFound
	}

	f.observe(OperationDescribe, OutcomeOK)
	return text
}

// SummarizeTrend никогда не возвращает ошибку; при любой проблеме - пустая строка
func (f *Fallback) SummarizeTrend(ctx context.Context, appointmentsCount int, revenue float64) string {
	text, err := f.gen.SummarizeTrend(ctx, appointmentsCount, revenue)
	if err != nil {
		f.logger.Warn("insight: SummarizeTrend failed: %v", err)
		f.observe(OperationSummarize, OutcomeError)
		return ""
	}

	text = strings.TrimSpace(text)
	if text == "" {
		f.observe(OperationSummarize, OutcomeEmpty)
		return ""
	}

	f.observe(OperationSummarize, OutcomeOK)
	return text
}

func (f *Fallback) observe(op, outcome string) {
	if f.metrics != nil {
		f.metrics.ObserveInsight(op, outcome)
	}
}
