package application

import (
	"context"

	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/google/uuid"
)

// StartApplication validates the pre-qualification questionnaire and opens a
// draft application holding the answers.
func (s *applicationService) StartApplication(ctx context.Context, form domain.Form) (*domain.Application, error) {
	if err := validatePreQualification(form); err != nil {
		return nil, err
	}

	app := domain.Application{
		ID:          uuid.New(),
		Status:      domain.ApplicationStatusDraft,
		CurrentStep: 1,
		Form:        form,
	}

	if err := s.uow.ApplicationRepo().Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info("application started", "application_id", app.ID, "state", form.State, "employee_type", form.EmployeeType)
	return &app, nil
}
