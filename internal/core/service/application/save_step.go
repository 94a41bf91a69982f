package application

import (
	"context"

	"github.com/codecraftwt/eazecap/internal/core/domain"
	"github.com/codecraftwt/eazecap/internal/core/port"

	"github.com/google/uuid"
)

// SaveStep validates one wizard page and persists the updated answers. The
// stored form is replaced wholesale; document references written by the
// upload pipeline are carried over from the stored copy so a stale client
// payload cannot erase a completed upload.
func (s *applicationService) SaveStep(ctx context.Context, id uuid.UUID, step int, form domain.Form) (*domain.Application, error) {
	current, err := s.uow.ApplicationRepo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.ApplicationStatusSubmitted {
		return nil, domain.ErrAlreadySubmitted
	}

	carryOverDocuments(&form, current.Form)

	if err := validateStep(step, form); err != nil {
		return nil, err
	}

	next := step + 1
	if next > 6 {
		next = 6
	}

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if err := uow.ApplicationRepo().UpdateForm(ctx, id, form); err != nil {
			return err
		}
		if next > current.CurrentStep {
			return uow.ApplicationRepo().UpdateStep(ctx, id, next)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	current.Form = form
	if next > current.CurrentStep {
		current.CurrentStep = next
	}
	return current, nil
}

var uploadFieldIDs = []string{
	domain.UploadFieldIDPhoto,
	domain.UploadFieldPayStub1,
	domain.UploadFieldPayStub2,
	domain.UploadFieldPayStub3,
	domain.UploadFieldPayStub4,
	domain.UploadFieldTaxTranscript2023,
	domain.UploadFieldTaxTranscript2024,
	domain.UploadFieldBankStatement1,
	domain.UploadFieldBankStatement2,
}

func carryOverDocuments(form *domain.Form, stored domain.Form) {
	for _, fieldID := range uploadFieldIDs {
		key, filename, _ := stored.DocumentRef(fieldID)
		if key != "" {
			_ = form.SetDocument(fieldID, key, filename)
		}
	}
}
