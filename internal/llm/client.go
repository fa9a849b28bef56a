package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/contentplan/internal/domain"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses provider, then task default
	MaxTokens    *int     // nil uses provider, then task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	Provider  Provider
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the provider endpoint is reachable.
	Available(ctx context.Context) bool
}

// NewClient builds the client for provider. Hosted providers require an
// API key; Ollama only needs its endpoint.
func NewClient(cfg LLMConfig, provider Provider, observer Observer) (LLMClient, error) {
	switch provider {
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	case ProviderAnthropic:
		return newAnthropicClient(cfg, observer)
	case ProviderGemini, ProviderCohere, ProviderMistral, ProviderOpenAI:
		return newOpenAIClient(cfg, provider, observer)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}

// completion is one provider round trip with resolved parameters.
type completion struct {
	Model       string
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// completeFunc performs a single attempt and returns the text and the model
// that served it.
type completeFunc func(ctx context.Context, c completion) (text, model string, err error)

// caller applies the timeout, retry and observer policy shared by every
// provider client.
type caller struct {
	cfg      LLMConfig
	provider Provider
	observer Observer
}

func newCaller(cfg LLMConfig, provider Provider, observer Observer) caller {
	if observer == nil {
		observer = NoopObserver{}
	}
	return caller{cfg: cfg, provider: provider, observer: observer}
}

func (c caller) resolve(req GenerateRequest) completion {
	taskCfg := c.cfg.Tasks[req.Task]
	pc := c.cfg.Provider(c.provider)
	return completion{
		Model:       pc.Model,
		System:      req.SystemPrompt,
		User:        req.UserPrompt,
		Temperature: domain.Float64FromPtrWithDefault(taskCfg.Temperature, req.Temperature, pc.Temperature),
		MaxTokens:   domain.IntFromPtrWithDefault(taskCfg.MaxTokens, req.MaxTokens, pc.MaxTokens),
	}
}

func (c caller) generate(ctx context.Context, req GenerateRequest, call completeFunc) (*GenerateResponse, error) {
	start := time.Now()
	params := c.resolve(req)

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	tried := 0

	for i := 0; i < attempts; i++ {
		tried++
		text, model, err := call(ctx, params)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Provider:  c.provider,
				Task:      req.Task,
				Model:     domain.CoalesceStr(model, params.Model),
				Attempts:  tried,
				LatencyMs: latency,
				Success:   true,
			})
			return &GenerateResponse{
				Text:      text,
				Model:     domain.CoalesceStr(model, params.Model),
				Provider:  c.provider,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
		if isPermanent(err) {
			break
		}
	}

	var result error
	switch {
	case ctx.Err() != nil || errors.Is(lastErr, context.DeadlineExceeded):
		result = ErrTimeout
	case isPermanent(lastErr):
		result = fmt.Errorf("%w: %s: %v", ErrRequestRejected, c.provider, lastErr)
	case isConnectionError(lastErr):
		result = fmt.Errorf("%w: %s: %v", ErrProviderUnavailable, c.provider, lastErr)
	default:
		result = fmt.Errorf("%w: %s: %v", ErrRetryExhausted, c.provider, lastErr)
	}

	c.observer.OnCallComplete(CallEvent{
		Provider:  c.provider,
		Task:      req.Task,
		Model:     params.Model,
		Attempts:  tried,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(result),
	})
	return nil, result
}
