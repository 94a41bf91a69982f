package port

import (
	"context"
	"io"
	"time"

	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/google/uuid"
)

// FileUpload is the user-selected binary handed to the upload pipeline.
type FileUpload struct {
	Filename    string
	ContentType string
	SizeBytes   int64
	Content     io.Reader
}

// UploadService drives the document-upload pipeline: stage to temporary
// storage, await a scan verdict, then finalize into the CRM destination.
type UploadService interface {
	UploadDocument(ctx context.Context, applicationID uuid.UUID, fieldID string, file FileUpload) (*domain.DocumentResult, error)
	ListDocuments(ctx context.Context, applicationID uuid.UUID) ([]domain.Document, error)
}

// ApplicationService manages the wizard's form state and submission.
type ApplicationService interface {
	StartApplication(ctx context.Context, form domain.Form) (*domain.Application, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	SaveStep(ctx context.Context, id uuid.UUID, step int, form domain.Form) (*domain.Application, error)
	Submit(ctx context.Context, id uuid.UUID) error
	EstimateRepayment(amount float64, termMonths int) float64
}

// CleanupService reaps document uploads abandoned mid-pipeline.
type CleanupService interface {
	CleanupStaleDocuments(ctx context.Context, now time.Time) error
}
