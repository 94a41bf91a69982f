package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/codecraftwt/eazecap/internal/config"
	"github.com/codecraftwt/eazecap/internal/core/domain"
	"github.com/codecraftwt/eazecap/internal/core/port"

	"github.com/google/uuid"
)

type uploadService struct {
	uow     port.UnitOfWork
	staging port.StagingStorage
	scanner port.ScanStatusSource
	crm     port.CRMClient
	creds   port.CredentialProvider
	scanCfg config.ScannerConfig
	logger  *slog.Logger
}

// NewUploadService creates the service driving the document-upload pipeline.
func NewUploadService(
	uow port.UnitOfWork,
	staging port.StagingStorage,
	scanner port.ScanStatusSource,
	crm port.CRMClient,
	creds port.CredentialProvider,
	scanCfg config.ScannerConfig,
	logger *slog.Logger,
) port.UploadService {
	return &uploadService{
		uow:     uow,
		staging: staging,
		scanner: scanner,
		crm:     crm,
		creds:   creds,
		scanCfg: scanCfg,
		logger:  logger,
	}
}

// UploadDocument runs the full pipeline for one selected file: credential,
// staging transfer, scan verdict, finalize. Steps are strictly sequential;
// every failure leaves the document row failed and form state untouched.
func (s *uploadService) UploadDocument(ctx context.Context, applicationID uuid.UUID, fieldID string, file port.FileUpload) (*domain.DocumentResult, error) {
	folder, err := domain.FolderForField(fieldID)
	if err != nil {
		return nil, err
	}

	if _, err := s.uow.ApplicationRepo().FindByID(ctx, applicationID); err != nil {
		return nil, err
	}

	// The credential must exist before any byte leaves the process.
	token, err := s.creds.Token(ctx)
	if err != nil {
		return nil, err
	}

	content, err := io.ReadAll(file.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: reading upload body: %w", domain.ErrStagingFailed, err)
	}

	doc := domain.Document{
		ID:            uuid.New(),
		ApplicationID: applicationID,
		FieldID:       fieldID,
		Folder:        folder,
		Filename:      file.Filename,
		ContentType:   file.ContentType,
		SizeBytes:     int64(len(content)),
		Verdict:       domain.ScanVerdictPending,
		Status:        domain.DocumentStatusStaging,
	}
	if err := s.uow.DocumentRepo().Create(ctx, doc); err != nil {
		return nil, err
	}

	stagingKey, err := s.stage(ctx, doc.ID, folder, file.Filename, file.ContentType, content)
	if err != nil {
		s.markFailed(ctx, doc.ID)
		return nil, err
	}

	if err := s.uow.DocumentRepo().UpdateStatus(ctx, doc.ID, domain.DocumentStatusScanning); err != nil {
		s.markFailed(ctx, doc.ID)
		return nil, err
	}

	verdict, err := s.awaitVerdict(ctx, stagingKey)
	if err != nil {
		s.markFailed(ctx, doc.ID)
		return nil, err
	}

	if verdict == domain.ScanVerdictUnsafe {
		// Hard business rejection: record the verdict and stop. The finalize
		// call site below cannot be reached on this branch.
		s.recordVerdict(ctx, doc.ID, domain.ScanVerdictUnsafe)
		s.markFailed(ctx, doc.ID)
		return nil, domain.ErrUnsafeFile
	}

	s.recordVerdict(ctx, doc.ID, domain.ScanVerdictSafe)
	if err := s.uow.DocumentRepo().UpdateStatus(ctx, doc.ID, domain.DocumentStatusFinalizing); err != nil {
		s.markFailed(ctx, doc.ID)
		return nil, err
	}

	result, err := s.finalize(ctx, token, stagingKey, file.ContentType, content)
	if err != nil {
		s.markFailed(ctx, doc.ID)
		return nil, err
	}

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if err := uow.DocumentRepo().Complete(ctx, doc.ID, result.FinalKey); err != nil {
			return err
		}

		// A newer selection for the same field supersedes this task; its
		// result must not clobber the later upload's form entry.
		latest, err := uow.DocumentRepo().FindLatestByField(ctx, applicationID, fieldID)
		if err != nil {
			return err
		}
		if latest.ID != doc.ID {
			s.logger.Warn("discarding superseded upload result",
				"application_id", applicationID, "field", fieldID, "document_id", doc.ID)
			return nil
		}

		app, err := uow.ApplicationRepo().FindByID(ctx, applicationID)
		if err != nil {
			return err
		}
		if err := app.Form.SetDocument(fieldID, result.FinalKey, result.Filename); err != nil {
			return err
		}
		return uow.ApplicationRepo().UpdateForm(ctx, applicationID, app.Form)
	})
	if txErr != nil {
		s.markFailed(ctx, doc.ID)
		return nil, txErr
	}

	return result, nil
}

// markFailed is best effort: a failed status write must not mask the pipeline error.
func (s *uploadService) markFailed(ctx context.Context, docID uuid.UUID) {
	if err := s.uow.DocumentRepo().UpdateStatus(ctx, docID, domain.DocumentStatusFailed); err != nil {
		s.logger.Error("failed to mark document failed", "document_id", docID, "error", err)
	}
}

func (s *uploadService) recordVerdict(ctx context.Context, docID uuid.UUID, verdict domain.ScanVerdict) {
	if err := s.uow.DocumentRepo().SetVerdict(ctx, docID, verdict); err != nil {
		s.logger.Error("failed to record scan verdict", "document_id", docID, "verdict", verdict, "error", err)
	}
}
