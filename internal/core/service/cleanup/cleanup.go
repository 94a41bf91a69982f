package cleanup

import (
	"log/slog"
	"time"

	"github.com/codecraftwt/eazecap/internal/core/port"
)

type cleanupService struct {
	uow        port.UnitOfWork
	staging    port.StagingStorage
	stagingTTL time.Duration
	logger     *slog.Logger
}

// NewCleanupService creates the reaper for uploads abandoned mid-pipeline.
func NewCleanupService(uow port.UnitOfWork, staging port.StagingStorage, stagingTTL time.Duration, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		uow:        uow,
		staging:    staging,
		stagingTTL: stagingTTL,
		logger:     logger,
	}
}
