package port

import (
	"context"
	"time"

	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/google/uuid"
)

// ApplicationRepository is an interface to interact with stored loan applications
type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	UpdateForm(ctx context.Context, id uuid.UUID, form domain.Form) error
	UpdateStep(ctx context.Context, id uuid.UUID, step int) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error
}

// DocumentRepository is an interface to interact with stored document uploads
type DocumentRepository interface {
	Create(ctx context.Context, doc domain.Document) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]domain.Document, error)
	// FindLatestByField returns the newest document row for (application, field).
	// Used to discard writes from superseded upload attempts.
	FindLatestByField(ctx context.Context, applicationID uuid.UUID, fieldID string) (*domain.Document, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) error
	SetStagingKey(ctx context.Context, id uuid.UUID, stagingKey string) error
	SetVerdict(ctx context.Context, id uuid.UUID, verdict domain.ScanVerdict) error
	// SetVerdictByStagingKey records a verdict arriving through the event
	// broker, keyed by the staged object rather than the document id.
	SetVerdictByStagingKey(ctx context.Context, stagingKey string, verdict domain.ScanVerdict) error
	Complete(ctx context.Context, id uuid.UUID, finalKey string) error
	// FindStale returns non-terminal documents not updated since the cutoff.
	FindStale(ctx context.Context, cutoff time.Time) ([]domain.Document, error)
}

// UnitOfWork is a pattern that allows to run transactions across different repositories
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
	ApplicationRepo() ApplicationRepository
	DocumentRepo() DocumentRepository
}
