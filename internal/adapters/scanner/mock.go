package scanner

import (
	"context"

	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockScanStatusSource is a mock implementation of port.ScanStatusSource
type MockScanStatusSource struct {
	mock.Mock
}

func NewMockScanStatusSource() *MockScanStatusSource {
	return &MockScanStatusSource{}
}

func (m *MockScanStatusSource) Check(ctx context.Context, stagingKey string) (domain.ScanVerdict, error) {
	args := m.Called(ctx, stagingKey)
	return args.Get(0).(domain.ScanVerdict), args.Error(1)
}
