package document

import (
	"log/slog"

	"github.com/codecraftwt/eazecap/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 document routes
type HandlerV1 struct {
	uploadService port.UploadService
	maxFileSize   int64
	logger        *slog.Logger
}

// NewDocumentHandlerV1 creates HandlerV1
func NewDocumentHandlerV1(service port.UploadService, maxFileSize int64, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		maxFileSize:   maxFileSize,
		logger:        logger,
	}
}

// Routes exposes routes, nested under an application id
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/{fieldID}", h.UploadDocumentV1)
	router.Get("/", h.ListDocumentsV1)

	return router
}
