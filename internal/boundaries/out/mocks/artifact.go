package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockArtifactWriter is a mock implementation of out.ArtifactWriter
type MockArtifactWriter struct {
	mock.Mock
}

func (m *MockArtifactWriter) Write(ctx context.Context, path string, data []byte) error {
	args := m.Called(ctx, path, data)
	return args.Error(0)
}
