package upload

import (
	"context"

	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/google/uuid"
)

func (s *uploadService) ListDocuments(ctx context.Context, applicationID uuid.UUID) ([]domain.Document, error) {
	return s.uow.DocumentRepo().ListByApplication(ctx, applicationID)
}
