package providers

import (
	"context"
	"fmt"

	"pdfsummarizer/internal/config"
)

// New builds the Generator selected by cfg.Provider.
func New(ctx context.Context, cfg config.ModelConfig) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		return NewGeminiProvider(ctx, cfg)
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg), nil
	case config.ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}
