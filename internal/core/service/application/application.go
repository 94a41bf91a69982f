package application

import (
	"log/slog"

	"github.com/codecraftwt/eazecap/internal/config"
	"github.com/codecraftwt/eazecap/internal/core/port"
)

type applicationService struct {
	uow    port.UnitOfWork
	crm    port.CRMClient
	creds  port.CredentialProvider
	crmCfg config.CRMConfig
	logger *slog.Logger
}

// NewApplicationService creates the service managing wizard form state,
// per-step validation, and CRM submission.
func NewApplicationService(
	uow port.UnitOfWork,
	crm port.CRMClient,
	creds port.CredentialProvider,
	crmCfg config.CRMConfig,
	logger *slog.Logger,
) port.ApplicationService {
	return &applicationService{
		uow:    uow,
		crm:    crm,
		creds:  creds,
		crmCfg: crmCfg,
		logger: logger,
	}
}
