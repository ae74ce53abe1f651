package providers

import "context"

// Operations passed in GenerateRequest.Operation. They label metrics and
// let the mock provider return operation-shaped output.
const (
	OperationSummary = "summary"
	OperationQuiz    = "quiz"
)

type ProviderInfo struct {
	Name  string `json:"name"`
	Model string `json:"model"`
}

type GenerateRequest struct {
	Operation string `json:"operation"`
	Prompt    string `json:"prompt"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type GenerateResponse struct {
	Text  string `json:"text"`
	Usage Usage  `json:"usage"`
}

// Generator sends a single prompt to a generative model and returns its text.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error)
	Info() ProviderInfo
}
