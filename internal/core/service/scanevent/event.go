package scanevent

import (
	"log/slog"

	"github.com/codecraftwt/eazecap/internal/core/port"
)

type scanEventService struct {
	uow    port.UnitOfWork
	logger *slog.Logger
}

// NewScanEventService creates the handler recording scan-verdict events
// published by the malware-scanning pipeline.
func NewScanEventService(uow port.UnitOfWork, logger *slog.Logger) port.MessageService {
	return &scanEventService{
		uow:    uow,
		logger: logger,
	}
}
