package upload_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/codecraftwt/eazecap/internal/adapters/crm"
	"github.com/codecraftwt/eazecap/internal/adapters/repository"
	"github.com/codecraftwt/eazecap/internal/adapters/scanner"
	"github.com/codecraftwt/eazecap/internal/adapters/storage"
	"github.com/codecraftwt/eazecap/internal/config"
	"github.com/codecraftwt/eazecap/internal/core/domain"
	"github.com/codecraftwt/eazecap/internal/core/port"
	"github.com/codecraftwt/eazecap/internal/core/service/credential"
	"github.com/codecraftwt/eazecap/internal/core/service/upload"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type uploadFixture struct {
	uow     *repository.MockUnitOfWork
	staging *storage.MockStagingStorage
	scanner *scanner.MockScanStatusSource
	crm     *crm.MockCRMClient
	creds   *credential.MockProvider
	service port.UploadService
}

func newUploadFixture(scanCfg config.ScannerConfig) *uploadFixture {
	f := &uploadFixture{
		uow:     repository.NewMockUnitOfWork(),
		staging: storage.NewMockStagingStorage(),
		scanner: scanner.NewMockScanStatusSource(),
		crm:     crm.NewMockCRMClient(),
		creds:   credential.NewMockProvider(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.service = upload.NewUploadService(f.uow, f.staging, f.scanner, f.crm, f.creds, scanCfg, logger)
	return f
}

func fastScanCfg() config.ScannerConfig {
	return config.ScannerConfig{PollInterval: 1, MaxAttempts: 3}
}

func testFile() port.FileUpload {
	return port.FileUpload{
		Filename:    "My Pay Stub.pdf",
		ContentType: "application/pdf",
		SizeBytes:   4,
		Content:     bytes.NewReader([]byte("data")),
	}
}

func draftApplication(id uuid.UUID) *domain.Application {
	return &domain.Application{
		ID:          id,
		Status:      domain.ApplicationStatusDraft,
		CurrentStep: 3,
	}
}

func TestUploadDocument_Success(t *testing.T) {
	// Arrange
	f := newUploadFixture(fastScanCfg())
	ctx := context.Background()
	appID := uuid.New()
	docRepo := f.uow.GetDocumentRepoMock()
	appRepo := f.uow.GetApplicationRepoMock()

	appRepo.On("FindByID", mock.Anything, appID).Return(draftApplication(appID), nil)
	f.creds.On("Token", mock.Anything).Return("token-123", nil)

	// FindLatestByField must agree with the created document for the form write
	// to happen; capture the generated id on the shared pointer.
	latest := &domain.Document{}
	docRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		latest.ID = args.Get(1).(domain.Document).ID
	}).Return(nil)
	f.staging.On("Upload", mock.Anything, mock.Anything, "application/pdf", mock.Anything, int64(4)).Return(nil)
	docRepo.On("SetStagingKey", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	docRepo.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.scanner.On("Check", mock.Anything, mock.Anything).Return(domain.ScanVerdictSafe, nil)
	docRepo.On("SetVerdict", mock.Anything, mock.Anything, domain.ScanVerdictSafe).Return(nil)
	f.crm.On("DocumentUploadURL", mock.Anything, "token-123", mock.Anything, "application/pdf").
		Return(&domain.DocumentDestination{UploadURL: "https://bucket/one-time", S3Key: "final/My-Pay-Stub.pdf"}, nil)
	f.crm.On("TransferBinary", mock.Anything, "https://bucket/one-time", "application/pdf", mock.Anything, int64(4)).Return(nil)

	f.uow.On("Execute", mock.Anything, mock.Anything).Return(nil)
	docRepo.On("Complete", mock.Anything, mock.Anything, "final/My-Pay-Stub.pdf").Return(nil)
	docRepo.On("FindLatestByField", mock.Anything, appID, domain.UploadFieldPayStub1).Return(latest, nil)
	appRepo.On("UpdateForm", mock.Anything, appID, mock.Anything).Return(nil)

	// Act
	result, err := f.service.UploadDocument(ctx, appID, domain.UploadFieldPayStub1, testFile())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "final/My-Pay-Stub.pdf", result.FinalKey)
	f.crm.AssertNumberOfCalls(t, "DocumentUploadURL", 1)
	f.crm.AssertNumberOfCalls(t, "TransferBinary", 1)
	appRepo.AssertCalled(t, "UpdateForm", mock.Anything, appID, mock.Anything)
}

func TestUploadDocument_UnsafeVerdict_NeverFinalizes(t *testing.T) {
	// Arrange
	f := newUploadFixture(fastScanCfg())
	ctx := context.Background()
	appID := uuid.New()
	docRepo := f.uow.GetDocumentRepoMock()
	appRepo := f.uow.GetApplicationRepoMock()

	appRepo.On("FindByID", mock.Anything, appID).Return(draftApplication(appID), nil)
	f.creds.On("Token", mock.Anything).Return("token-123", nil)
	docRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.staging.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	docRepo.On("SetStagingKey", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	docRepo.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.scanner.On("Check", mock.Anything, mock.Anything).Return(domain.ScanVerdictUnsafe, nil)
	docRepo.On("SetVerdict", mock.Anything, mock.Anything, domain.ScanVerdictUnsafe).Return(nil)

	// Act
	result, err := f.service.UploadDocument(ctx, appID, domain.UploadFieldIDPhoto, testFile())

	// Assert
	require.ErrorIs(t, err, domain.ErrUnsafeFile)
	assert.Nil(t, result)
	f.crm.AssertNotCalled(t, "DocumentUploadURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.crm.AssertNotCalled(t, "TransferBinary", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	appRepo.AssertNotCalled(t, "UpdateForm", mock.Anything, mock.Anything, mock.Anything)
	docRepo.AssertCalled(t, "UpdateStatus", mock.Anything, mock.Anything, domain.DocumentStatusFailed)
}

func TestUploadDocument_CredentialFailure_NothingStaged(t *testing.T) {
	// Arrange
	f := newUploadFixture(fastScanCfg())
	ctx := context.Background()
	appID := uuid.New()
	appRepo := f.uow.GetApplicationRepoMock()
	docRepo := f.uow.GetDocumentRepoMock()

	appRepo.On("FindByID", mock.Anything, appID).Return(draftApplication(appID), nil)
	f.creds.On("Token", mock.Anything).Return("", domain.ErrCredentialUnavailable)

	// Act
	result, err := f.service.UploadDocument(ctx, appID, domain.UploadFieldIDPhoto, testFile())

	// Assert
	require.ErrorIs(t, err, domain.ErrCredentialUnavailable)
	assert.Nil(t, result)
	f.staging.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	docRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUploadDocument_UnknownField(t *testing.T) {
	// Arrange
	f := newUploadFixture(fastScanCfg())
	ctx := context.Background()

	// Act
	result, err := f.service.UploadDocument(ctx, uuid.New(), "selfie", testFile())

	// Assert
	require.ErrorIs(t, err, domain.ErrUnknownUploadField)
	assert.Nil(t, result)
	f.creds.AssertNotCalled(t, "Token", mock.Anything)
}

func TestUploadDocument_ScanTimeout(t *testing.T) {
	// Arrange
	f := newUploadFixture(fastScanCfg())
	ctx := context.Background()
	appID := uuid.New()
	docRepo := f.uow.GetDocumentRepoMock()
	appRepo := f.uow.GetApplicationRepoMock()

	appRepo.On("FindByID", mock.Anything, appID).Return(draftApplication(appID), nil)
	f.creds.On("Token", mock.Anything).Return("token-123", nil)
	docRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.staging.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	docRepo.On("SetStagingKey", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	docRepo.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.scanner.On("Check", mock.Anything, mock.Anything).Return(domain.ScanVerdictPending, nil)

	// Act
	result, err := f.service.UploadDocument(ctx, appID, domain.UploadFieldBankStatement1, testFile())

	// Assert
	require.ErrorIs(t, err, domain.ErrScanTimeout)
	require.NotErrorIs(t, err, domain.ErrUnsafeFile)
	assert.Nil(t, result)
	f.scanner.AssertNumberOfCalls(t, "Check", 3)
	f.crm.AssertNotCalled(t, "DocumentUploadURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	docRepo.AssertCalled(t, "UpdateStatus", mock.Anything, mock.Anything, domain.DocumentStatusFailed)
}

func TestUploadDocument_SafeOnSecondAttempt(t *testing.T) {
	// Arrange
	f := newUploadFixture(fastScanCfg())
	ctx := context.Background()
	appID := uuid.New()
	docRepo := f.uow.GetDocumentRepoMock()
	appRepo := f.uow.GetApplicationRepoMock()

	appRepo.On("FindByID", mock.Anything, appID).Return(draftApplication(appID), nil)
	f.creds.On("Token", mock.Anything).Return("token-123", nil)

	latest := &domain.Document{}
	docRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		latest.ID = args.Get(1).(domain.Document).ID
	}).Return(nil)
	f.staging.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	docRepo.On("SetStagingKey", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	docRepo.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.scanner.On("Check", mock.Anything, mock.Anything).Return(domain.ScanVerdictPending, nil).Once()
	f.scanner.On("Check", mock.Anything, mock.Anything).Return(domain.ScanVerdictSafe, nil).Once()
	docRepo.On("SetVerdict", mock.Anything, mock.Anything, domain.ScanVerdictSafe).Return(nil)
	f.crm.On("DocumentUploadURL", mock.Anything, "token-123", mock.Anything, mock.Anything).
		Return(&domain.DocumentDestination{UploadURL: "https://bucket/one-time", S3Key: "final/key"}, nil)
	f.crm.On("TransferBinary", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.uow.On("Execute", mock.Anything, mock.Anything).Return(nil)
	docRepo.On("Complete", mock.Anything, mock.Anything, "final/key").Return(nil)
	docRepo.On("FindLatestByField", mock.Anything, appID, domain.UploadFieldTaxTranscript2023).Return(latest, nil)
	appRepo.On("UpdateForm", mock.Anything, appID, mock.Anything).Return(nil)

	// Act
	result, err := f.service.UploadDocument(ctx, appID, domain.UploadFieldTaxTranscript2023, testFile())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	f.scanner.AssertNumberOfCalls(t, "Check", 2)
	f.crm.AssertNumberOfCalls(t, "TransferBinary", 1)
}

func TestUploadDocument_SupersededResultDiscarded(t *testing.T) {
	// Arrange
	f := newUploadFixture(fastScanCfg())
	ctx := context.Background()
	appID := uuid.New()
	docRepo := f.uow.GetDocumentRepoMock()
	appRepo := f.uow.GetApplicationRepoMock()

	appRepo.On("FindByID", mock.Anything, appID).Return(draftApplication(appID), nil)
	f.creds.On("Token", mock.Anything).Return("token-123", nil)
	docRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.staging.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	docRepo.On("SetStagingKey", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	docRepo.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.scanner.On("Check", mock.Anything, mock.Anything).Return(domain.ScanVerdictSafe, nil)
	docRepo.On("SetVerdict", mock.Anything, mock.Anything, domain.ScanVerdictSafe).Return(nil)
	f.crm.On("DocumentUploadURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.DocumentDestination{UploadURL: "https://bucket/one-time", S3Key: "final/key"}, nil)
	f.crm.On("TransferBinary", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.uow.On("Execute", mock.Anything, mock.Anything).Return(nil)
	docRepo.On("Complete", mock.Anything, mock.Anything, "final/key").Return(nil)

	// A different, newer document row owns this field now.
	docRepo.On("FindLatestByField", mock.Anything, appID, domain.UploadFieldPayStub2).
		Return(&domain.Document{ID: uuid.New()}, nil)

	// Act
	result, err := f.service.UploadDocument(ctx, appID, domain.UploadFieldPayStub2, testFile())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	appRepo.AssertNotCalled(t, "UpdateForm", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadDocument_StagingFailure(t *testing.T) {
	// Arrange
	f := newUploadFixture(fastScanCfg())
	ctx := context.Background()
	appID := uuid.New()
	docRepo := f.uow.GetDocumentRepoMock()
	appRepo := f.uow.GetApplicationRepoMock()

	appRepo.On("FindByID", mock.Anything, appID).Return(draftApplication(appID), nil)
	f.creds.On("Token", mock.Anything).Return("token-123", nil)
	docRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.staging.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)
	docRepo.On("UpdateStatus", mock.Anything, mock.Anything, domain.DocumentStatusFailed).Return(nil)

	// Act
	result, err := f.service.UploadDocument(ctx, appID, domain.UploadFieldIDPhoto, testFile())

	// Assert
	require.ErrorIs(t, err, domain.ErrStagingFailed)
	assert.Nil(t, result)
	f.scanner.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
	f.crm.AssertNotCalled(t, "DocumentUploadURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
