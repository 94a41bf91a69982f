package application

import (
	"log/slog"

	"github.com/codecraftwt/eazecap/internal/core/port"
)

// HandlerV1 is the handler for v1 application routes
type HandlerV1 struct {
	applicationService port.ApplicationService
	logger             *slog.Logger
}

// NewApplicationHandlerV1 creates HandlerV1
func NewApplicationHandlerV1(service port.ApplicationService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		applicationService: service,
		logger:             logger,
	}
}
