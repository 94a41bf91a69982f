package application

import (
	"context"

	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockApplicationService is a mock implementation of port.ApplicationService
type MockApplicationService struct {
	mock.Mock
}

// NewMockApplicationService creates a new MockApplicationService
func NewMockApplicationService() *MockApplicationService {
	return &MockApplicationService{}
}

func (m *MockApplicationService) StartApplication(ctx context.Context, form domain.Form) (*domain.Application, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationService) GetApplication(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationService) SaveStep(ctx context.Context, id uuid.UUID, step int, form domain.Form) (*domain.Application, error) {
	args := m.Called(ctx, id, step, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationService) Submit(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockApplicationService) EstimateRepayment(amount float64, termMonths int) float64 {
	args := m.Called(amount, termMonths)
	return args.Get(0).(float64)
}
