package llm

import (
	"context"
	"fmt"

	"github.com/asadk/hikmah/internal/storage"
)

// NewClient creates a Client from configuration, wrapped with logging and
// retry middleware. The middleware order is caller, then retry, then
// logging, then the backend, so every attempt is logged individually.
func NewClient(ctx context.Context, cfg Config, events storage.EventRepo) (Client, error) {
	var base Client
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiClient(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIClient(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicClient(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterClient(cfg.OpenRouter)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown completion provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, events)
	return WithRetry(logged, cfg.Retry), nil
}
