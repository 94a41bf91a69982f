package application

import (
	"context"

	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/google/uuid"
)

// Submit posts the full form state to the CRM and marks the application
// submitted. The account id from the questionnaire wins over the configured
// default.
func (s *applicationService) Submit(ctx context.Context, id uuid.UUID) error {
	app, err := s.uow.ApplicationRepo().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if app.Status == domain.ApplicationStatusSubmitted {
		return domain.ErrAlreadySubmitted
	}

	if err := validateStep(6, app.Form); err != nil {
		return err
	}

	token, err := s.creds.Token(ctx)
	if err != nil {
		return err
	}

	accountID := app.Form.BusinessAccountID
	if accountID == "" {
		accountID = s.crmCfg.DefaultAccountID
	}

	if err := s.crm.SubmitApplication(ctx, token, accountID, app.Form); err != nil {
		return err
	}

	if err := s.uow.ApplicationRepo().UpdateStatus(ctx, id, domain.ApplicationStatusSubmitted); err != nil {
		return err
	}

	s.logger.Info("application submitted", "application_id", id, "account_id", accountID)
	return nil
}
