package storage

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockStagingStorage is a mock implementation of port.StagingStorage
type MockStagingStorage struct {
	mock.Mock
}

func NewMockStagingStorage() *MockStagingStorage {
	return &MockStagingStorage{}
}

func (m *MockStagingStorage) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	args := m.Called(ctx, key, contentType, body, size)
	return args.Error(0)
}

func (m *MockStagingStorage) DeleteObject(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
