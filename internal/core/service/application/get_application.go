package application

import (
	"context"

	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/google/uuid"
)

func (s *applicationService) GetApplication(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	return s.uow.ApplicationRepo().FindByID(ctx, id)
}
