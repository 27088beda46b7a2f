package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ferdiebergado/bookstore/internal/config"
	"github.com/ferdiebergado/bookstore/internal/metrics"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	gobreaker "github.com/sony/gobreaker/v2"
)

const breakerName = "llm"

var _ Completer = (*OpenAICompleter)(nil)

// OpenAICompleter sends prompts through openai-go. Calls go through a circuit
// breaker which opens after a run of consecutive failures.
type OpenAICompleter struct {
	completions openai.ChatCompletionService
	model       string
	temperature float64
	cb          *gobreaker.CircuitBreaker[string]
}

func NewOpenAICompleter(opts *config.LLMOptions, httpClient *http.Client) *OpenAICompleter {
	baseURL := opts.BaseURL
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout.Duration}
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(reqOpts...)

	return &OpenAICompleter{
		completions: client.Chat.Completions,
		model:       opts.Model,
		temperature: opts.Temperature,
		cb:          newBreaker(opts.Breaker),
	}
}

func newBreaker(opts *config.BreakerOptions) *gobreaker.CircuitBreaker[string] {
	threshold := uint32(5)
	settings := gobreaker.Settings{Name: breakerName}
	if opts != nil {
		settings.MaxRequests = opts.MaxRequests
		settings.Interval = opts.Interval.Duration
		settings.Timeout = opts.Timeout.Duration
		if opts.FailureThreshold > 0 {
			threshold = opts.FailureThreshold
		}
	}

	settings.ReadyToTrip = func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= threshold
	}

	settings.IsSuccessful = func(err error) bool {
		// a cancelled caller says nothing about the health of the model.
		return err == nil || errors.Is(err, context.Canceled)
	}

	settings.OnStateChange = func(name string, from, to gobreaker.State) {
		slog.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[string](settings)
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

func (c *OpenAICompleter) Complete(ctx context.Context, prompt Prompt) (string, error) {
	reply, err := c.cb.Execute(func() (string, error) {
		return c.complete(ctx, prompt)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return "", err
	}

	return reply, nil
}

func (c *OpenAICompleter) complete(ctx context.Context, prompt Prompt) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		Temperature: openai.Float(c.temperature),
	}

	resp, err := c.completions.New(ctx, params)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", fmt.Errorf("%w: create chat completion with model %s: %v", ErrUnavailable, c.model, err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
