package repository

import (
	"context"
	"time"

	"github.com/codecraftwt/eazecap/internal/core/domain"
	"github.com/codecraftwt/eazecap/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockApplicationRepository struct {
	mock.Mock
}

func NewMockApplicationRepository() *MockApplicationRepository {
	return &MockApplicationRepository{}
}

func (m *MockApplicationRepository) Create(ctx context.Context, app domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateForm(ctx context.Context, id uuid.UUID, form domain.Form) error {
	args := m.Called(ctx, id, form)
	return args.Error(0)
}

func (m *MockApplicationRepository) UpdateStep(ctx context.Context, id uuid.UUID, step int) error {
	args := m.Called(ctx, id, step)
	return args.Error(0)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockDocumentRepository struct {
	mock.Mock
}

func NewMockDocumentRepository() *MockDocumentRepository {
	return &MockDocumentRepository{}
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]domain.Document, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindLatestByField(ctx context.Context, applicationID uuid.UUID, fieldID string) (*domain.Document, error) {
	args := m.Called(ctx, applicationID, fieldID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockDocumentRepository) SetStagingKey(ctx context.Context, id uuid.UUID, stagingKey string) error {
	args := m.Called(ctx, id, stagingKey)
	return args.Error(0)
}

func (m *MockDocumentRepository) SetVerdict(ctx context.Context, id uuid.UUID, verdict domain.ScanVerdict) error {
	args := m.Called(ctx, id, verdict)
	return args.Error(0)
}

func (m *MockDocumentRepository) SetVerdictByStagingKey(ctx context.Context, stagingKey string, verdict domain.ScanVerdict) error {
	args := m.Called(ctx, stagingKey, verdict)
	return args.Error(0)
}

func (m *MockDocumentRepository) Complete(ctx context.Context, id uuid.UUID, finalKey string) error {
	args := m.Called(ctx, id, finalKey)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindStale(ctx context.Context, cutoff time.Time) ([]domain.Document, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	applicationRepo *MockApplicationRepository
	documentRepo    *MockDocumentRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		applicationRepo: &MockApplicationRepository{},
		documentRepo:    &MockDocumentRepository{},
	}
}

func (m *MockUnitOfWork) ApplicationRepo() port.ApplicationRepository {
	return m.applicationRepo
}

func (m *MockUnitOfWork) DocumentRepo() port.DocumentRepository {
	return m.documentRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetApplicationRepoMock() *MockApplicationRepository {
	return m.applicationRepo
}

func (m *MockUnitOfWork) GetDocumentRepoMock() *MockDocumentRepository {
	return m.documentRepo
}
