package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-LuxeBook/internal/service/dashboard/models"
)

type insightKey struct {
	count   int
	revenue float64
}

// insightTracker запрашивает инсайт в фоне и запоминает результат для пары (count, revenue).
// Неудачный запрос не повторяется, пока пара не изменится.
type insightTracker struct {
	summarizer TrendSummarizer
	timeout    time.Duration
	logger     Logger

	mu     sync.Mutex
	key    insightKey
	hasKey bool
	state  models.InsightResponse

	wg sync.WaitGroup
}

func newInsightTracker(summarizer TrendSummarizer, timeout time.Duration, logger Logger) *insightTracker {
	return &insightTracker{
		summarizer: summarizer,
		timeout:    timeout,
		logger:     logger,
		state:      models.InsightResponse{Status: models.InsightAbsent},
	}
}

// request возвращает текущее состояние, при смене пары запуская новый запрос
func (t *insightTracker) request(ctx context.Context, count int, revenue float64) models.InsightResponse {
	key := insightKey{count: count, revenue: revenue}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.hasKey && t.key == key {
		return t.state
	}

	t.key = key
	t.hasKey = true
	t.state = models.InsightResponse{Status: models.InsightLoading}

	// Запрос переживает HTTP запрос, но сохраняет его значения (трассировку)
	bg := context.WithoutCancel(ctx)

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		callCtx, cancel := context.WithTimeout(bg, t.timeout)
		defer cancel()

		text := t.summarizer.SummarizeTrend(callCtx, key.count, key.revenue)
		t.resolve(key, text)
	}()

	return t.state
}

func (t *insightTracker) resolve(key insightKey, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.hasKey || t.key != key {
		// Пока шел запрос, данные изменились
		return
	}

	if text == "" {
		t.state = models.InsightResponse{Status: models.InsightAbsent}
		return
	}

	t.state = models.InsightResponse{Status: models.InsightReady, Text: text}
	t.logger.Info("Dashboard: insight ready for count=%d revenue=%.2f", key.count, key.revenue)
}

func (t *insightTracker) reset() models.InsightResponse {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.hasKey = false
	t.state = models.InsightResponse{Status: models.InsightAbsent}
	return t.state
}

func (t *insightTracker) current() models.InsightResponse {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *insightTracker) wait() {
	t.wg.Wait()
}
