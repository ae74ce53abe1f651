package providers

import (
	"context"
	"fmt"
	"strings"

	"pdfsummarizer/internal/config"
)

// MockProvider returns deterministic text without calling any API.
type MockProvider struct {
	model string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{model: "mock-llm-v1"}
}

func (m *MockProvider) Info() ProviderInfo {
	return ProviderInfo{Name: config.ProviderMock, Model: m.model}
}

func (m *MockProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error) {
	if err := ctx.Err(); err != nil {
		return GenerateResponse{}, m.Info(), err
	}
	var text string
	switch req.Operation {
	case OperationQuiz:
		text = "1. What is the main topic of the document?\n" +
			"A) The summary topic\nB) Something else\nC) Nothing\nD) Unknown\n\nAnswers: 1-A"
	default:
		words := len(strings.Fields(req.Prompt))
		text = fmt.Sprintf("- Mock summary of a %d-word prompt.\n- Replace the mock provider for real output.", words)
	}
	return GenerateResponse{Text: text}, m.Info(), nil
}
