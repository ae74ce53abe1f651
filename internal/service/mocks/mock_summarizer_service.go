package mocks

import (
	"context"

	"pdfsummarizer/internal/model"
	"pdfsummarizer/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockSummarizerService struct {
	mock.Mock
}

func (m *MockSummarizerService) Summarize(ctx context.Context, in service.SummarizeInput) (*model.SummaryResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SummaryResult), args.Error(1)
}

func (m *MockSummarizerService) Quiz(ctx context.Context, in service.SummarizeInput) (*model.QuizResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuizResult), args.Error(1)
}
