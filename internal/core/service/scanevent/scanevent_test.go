package scanevent_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/codecraftwt/eazecap/internal/adapters/repository"
	"github.com/codecraftwt/eazecap/internal/core/domain"
	"github.com/codecraftwt/eazecap/internal/core/port"
	"github.com/codecraftwt/eazecap/internal/core/service/scanevent"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newScanEventService(uow *repository.MockUnitOfWork) port.MessageService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return scanevent.NewScanEventService(uow, logger)
}

func scanResultPayload(objectKey, status string) []byte {
	return []byte(`{
		"eventTime": "2024-01-01T00:00:00Z",
		"detail": {
			"s3ObjectDetails": {"bucketName": "staging", "objectKey": "` + objectKey + `"},
			"scanResultDetails": {"scanResultStatus": "` + status + `"}
		}
	}`)
}

func TestHandleMessage_SafeVerdictRecorded(t *testing.T) {
	// Arrange
	uow := repository.NewMockUnitOfWork()
	docRepo := uow.GetDocumentRepoMock()
	service := newScanEventService(uow)
	key := "pay-stubs/1700000000000-stub.pdf"
	docRepo.On("SetVerdictByStagingKey", mock.Anything, key, domain.ScanVerdictSafe).Return(nil)

	// Act
	err := service.HandleMessage(context.Background(), scanResultPayload(key, domain.ScanTagNoThreats))

	// Assert
	require.NoError(t, err)
	docRepo.AssertCalled(t, "SetVerdictByStagingKey", mock.Anything, key, domain.ScanVerdictSafe)
}

func TestHandleMessage_ThreatsVerdictRecorded(t *testing.T) {
	// Arrange
	uow := repository.NewMockUnitOfWork()
	docRepo := uow.GetDocumentRepoMock()
	service := newScanEventService(uow)
	key := "identity-photos/1700000000000-id.png"
	docRepo.On("SetVerdictByStagingKey", mock.Anything, key, domain.ScanVerdictUnsafe).Return(nil)

	// Act
	err := service.HandleMessage(context.Background(), scanResultPayload(key, domain.ScanTagThreats))

	// Assert
	require.NoError(t, err)
	docRepo.AssertCalled(t, "SetVerdictByStagingKey", mock.Anything, key, domain.ScanVerdictUnsafe)
}

func TestHandleMessage_URLEncodedKeyDecoded(t *testing.T) {
	// Arrange
	uow := repository.NewMockUnitOfWork()
	docRepo := uow.GetDocumentRepoMock()
	service := newScanEventService(uow)
	docRepo.On("SetVerdictByStagingKey", mock.Anything, "pay-stubs/1700000000000-My-Stub.pdf", domain.ScanVerdictSafe).Return(nil)

	// Act
	err := service.HandleMessage(context.Background(), scanResultPayload("pay-stubs%2F1700000000000-My-Stub.pdf", domain.ScanTagNoThreats))

	// Assert
	require.NoError(t, err)
	docRepo.AssertCalled(t, "SetVerdictByStagingKey", mock.Anything, "pay-stubs/1700000000000-My-Stub.pdf", domain.ScanVerdictSafe)
}

func TestHandleMessage_NonTerminalStatusIgnored(t *testing.T) {
	// Arrange
	uow := repository.NewMockUnitOfWork()
	docRepo := uow.GetDocumentRepoMock()
	service := newScanEventService(uow)

	// Act
	err := service.HandleMessage(context.Background(), scanResultPayload("pay-stubs/key.pdf", "SCANNING"))

	// Assert
	require.NoError(t, err)
	docRepo.AssertNotCalled(t, "SetVerdictByStagingKey", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleMessage_AlreadyDecidedDocumentNotRedelivered(t *testing.T) {
	// Arrange
	uow := repository.NewMockUnitOfWork()
	docRepo := uow.GetDocumentRepoMock()
	service := newScanEventService(uow)
	key := "pay-stubs/1700000000000-stub.pdf"
	docRepo.On("SetVerdictByStagingKey", mock.Anything, key, domain.ScanVerdictUnsafe).Return(domain.ErrVerdictFinal)

	// Act
	err := service.HandleMessage(context.Background(), scanResultPayload(key, domain.ScanTagThreats))

	// Assert
	require.NoError(t, err)
}

func TestHandleMessage_UnknownKeyNotRedelivered(t *testing.T) {
	// Arrange
	uow := repository.NewMockUnitOfWork()
	docRepo := uow.GetDocumentRepoMock()
	service := newScanEventService(uow)
	docRepo.On("SetVerdictByStagingKey", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrDocumentNotFound)

	// Act
	err := service.HandleMessage(context.Background(), scanResultPayload("pay-stubs/alien.pdf", domain.ScanTagNoThreats))

	// Assert
	require.NoError(t, err)
}

func TestHandleMessage_MalformedPayload(t *testing.T) {
	// Arrange
	uow := repository.NewMockUnitOfWork()
	service := newScanEventService(uow)

	// Act
	err := service.HandleMessage(context.Background(), []byte("not json"))

	// Assert
	require.Error(t, err)
}

func TestHandleMessage_MissingObjectKey(t *testing.T) {
	// Arrange
	uow := repository.NewMockUnitOfWork()
	service := newScanEventService(uow)

	// Act
	err := service.HandleMessage(context.Background(), []byte(`{"detail":{}}`))

	// Assert
	require.Error(t, err)
}
