package providers

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/genai"

	"pdfsummarizer/internal/config"
)

// GeminiProvider calls the Gemini Developer API through the official SDK.
type GeminiProvider struct {
	client *genai.Client
	model  string
	cfg    config.ModelConfig
}

// NewGeminiProvider creates a Gemini client. Outbound calls are traced with otelhttp.
func NewGeminiProvider(ctx context.Context, cfg config.ModelConfig) (*GeminiProvider, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: cfg.Name, cfg: cfg}, nil
}

func (g *GeminiProvider) Info() ProviderInfo {
	return ProviderInfo{Name: config.ProviderGemini, Model: g.model}
}

func (g *GeminiProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error) {
	info := g.Info()
	if timeout := g.cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), nil)
	if err != nil {
		return GenerateResponse{}, info, fmt.Errorf("gemini generate: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return GenerateResponse{}, info, ErrEmptyResponse
	}

	out := GenerateResponse{Text: text}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = Usage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	return out, info, nil
}
