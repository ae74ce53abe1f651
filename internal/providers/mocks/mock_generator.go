package mocks

import (
	"context"

	"pdfsummarizer/internal/providers"

	"github.com/stretchr/testify/mock"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, req providers.GenerateRequest) (providers.GenerateResponse, providers.ProviderInfo, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(providers.GenerateResponse), args.Get(1).(providers.ProviderInfo), args.Error(2)
}

func (m *MockGenerator) Info() providers.ProviderInfo {
	args := m.Called()
	return args.Get(0).(providers.ProviderInfo)
}
