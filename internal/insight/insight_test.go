package insight

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/pkg/logger"
)

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) DescribeService(context.Context, string, domain.ServiceCategory) (string, error) {
	return s.text, s.err
}

func (s *stubGenerator) SummarizeTrend(context.Context, int, float64) (string, error) {
	return s.text, s.err
}

type recordingMetrics struct {
	calls []string
}

func (r *recordingMetrics) ObserveInsight(operation, outcome string) {
	r.calls = append(r.calls, operation+":"+outcome)
}

func TestNew_WithoutGeneratorIsDisabled(t *testing.T) {
	m := &recordingMetrics{}
	p := New(nil, m, logger.NewNop())

	assert.IsType(t, &Disabled{}, p)
	assert.Equal(t, MsgNotConfigured, p.DescribeService(context.Background(), "Facial", domain.CategorySpa))
	assert.Equal(t, "", p.SummarizeTrend(context.Background(), 3, 100))
	assert.Equal(t, []string{"describe_service:disabled", "summarize_trend:disabled"}, m.calls)
}

func TestFallback(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		gen           *stubGenerator
		wantDescribe  string
		wantSummarize string
		wantOutcome   string
	}{
		{
			name:          "text is trimmed",
			gen:           &stubGenerator{text: "  Pure bliss.\n"},
			wantDescribe:  "Pure bliss.",
			wantSummarize: "Pure bliss.",
			wantOutcome:   OutcomeOK,
		},
		{
			name:          "empty text",
			gen:           &stubGenerator{text: "   "},
			wantDescribe:  MsgDescriptionNotFound,
			wantSummarize: "",
			wantOutcome:   OutcomeEmpty,
		},
		{
			name:          "generator error",
			gen:           &stubGenerator{err: errors.New("network down")},
			wantDescribe:  MsgDescriptionFailed,
			wantSummarize: "",
			wantOutcome:   OutcomeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &recordingMetrics{}
			p := New(tt.gen, m, logger.NewNop())

			assert.Equal(t, tt.wantDescribe, p.DescribeService(ctx, "Hot Stone", domain.CategoryMassage))
			assert.Equal(t, tt.wantSummarize, p.SummarizeTrend(ctx, 2, 135))
			assert.Equal(t, []string{
				OperationDescribe + ":" + tt.wantOutcome,
				OperationSummarize + ":" + tt.wantOutcome,
			}, m.calls)
		})
	}
}
