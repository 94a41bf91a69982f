package crm

import (
	"context"
	"io"

	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockCRMClient is a mock implementation of port.CRMClient
type MockCRMClient struct {
	mock.Mock
}

func NewMockCRMClient() *MockCRMClient {
	return &MockCRMClient{}
}

func (m *MockCRMClient) FetchToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCRMClient) DocumentUploadURL(ctx context.Context, token, fileName, contentType string) (*domain.DocumentDestination, error) {
	args := m.Called(ctx, token, fileName, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentDestination), args.Error(1)
}

func (m *MockCRMClient) TransferBinary(ctx context.Context, uploadURL, contentType string, body io.Reader, size int64) error {
	args := m.Called(ctx, uploadURL, contentType, body, size)
	return args.Error(0)
}

func (m *MockCRMClient) SubmitApplication(ctx context.Context, token, accountID string, form domain.Form) error {
	args := m.Called(ctx, token, accountID, form)
	return args.Error(0)
}
