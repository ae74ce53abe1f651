package mocks

import (
	"context"

	"pdfsummarizer/internal/extractor"

	"github.com/stretchr/testify/mock"
)

type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(ctx context.Context, data []byte) (*extractor.Result, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extractor.Result), args.Error(1)
}
