package credential

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of port.CredentialProvider
type MockProvider struct {
	mock.Mock
}

// NewMockProvider creates a new MockProvider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) Invalidate() {
	m.Called()
}
