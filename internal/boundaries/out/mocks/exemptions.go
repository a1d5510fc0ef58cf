package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/uptimecal/internal/domain"
)

// MockExemptionLoader is a mock implementation of out.ExemptionLoader
type MockExemptionLoader struct {
	mock.Mock
}

func (m *MockExemptionLoader) Load(ctx context.Context, path string) (*domain.ExemptionSet, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExemptionSet), args.Error(1)
}
