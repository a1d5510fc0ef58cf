package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/uptimecal/internal/domain"
)

// MockRenderer is a mock implementation of out.Renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderBadge(ctx context.Context, badge domain.Badge) ([]byte, error) {
	args := m.Called(ctx, badge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) RenderCalendar(ctx context.Context, days []domain.DayEntry) ([]byte, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
