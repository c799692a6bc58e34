package gemini

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
)

const (
	// DefaultModel модель по умолчанию
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout таймаут одного запроса по умолчанию
	DefaultTimeout = 15 * time.Second

	describeServicePrompt = `Write a short, alluring, and professional description (max 2 sentences) for a service named "%s" in the category of "%s". focus on the benefits to the customer.`
	summarizeTrendPrompt  = `We have %d active appointments and a projected revenue of $%s. Give me a 1 sentence motivational business insight for the dashboard.`
)

// Config настройки клиента
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client клиент для генерации текстов через Gemini API
type Client struct {
	models  generator
	model   string
	timeout time.Duration
	log     Logger
}

// NewClient создает новый экземпляр клиента. Без API ключа возвращает ErrNotConfigured
func NewClient(ctx context.Context, cfg Config, log Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create genai client: %v", ErrInternal, err)
	}

	return newClient(client.Models, cfg, log), nil
}

func newClient(models generator, cfg Config, log Logger) *Client {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		models:  models,
		model:   model,
		timeout: timeout,
		log:     log,
	}
}

// DescribeService генерирует рекламное описание услуги
func (c *Client) DescribeService(ctx context.Context, name string, category domain.ServiceCategory) (string, error) {
	prompt := fmt.Sprintf(describeServicePrompt, name, category.Label())
	return c.generate(ctx, "DescribeService", prompt)
}

// SummarizeTrend генерирует одно мотивирующее предложение по количеству записей и выручке
func (c *Client) SummarizeTrend(ctx context.Context, appointmentsCount int, revenue float64) (string, error) {
	prompt := fmt.Sprintf(summarizeTrendPrompt, appointmentsCount, strconv.FormatFloat(revenue, 'f', -1, 64))
	return c.generate(ctx, "SummarizeTrend", prompt)
}

func (c *Client) generate(ctx context.Context, op, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.log.Info("%s: requesting model=%s", op, c.model)

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		c.log.Error("%s: model request failed: %v", op, err)
		return "", fmt.Errorf("%w: %s: %v", ErrRequestFailed, op, err)
	}

	return strings.TrimSpace(responseText(resp)), nil
}

// responseText склеивает текстовые части первого кандидата
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
