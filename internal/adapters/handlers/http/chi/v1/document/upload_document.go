package document

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codecraftwt/eazecap/internal/core/domain"
	"github.com/codecraftwt/eazecap/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1UploadDocumentResponse is the persisted reference for a finished upload
type V1UploadDocumentResponse struct {
	FinalKey string `json:"finalKey"`
	Filename string `json:"filename"`
}

// UploadDocumentV1 runs a multipart file through the staging, scanning and
// finalize pipeline and returns the persisted document reference.
func (h *HandlerV1) UploadDocumentV1(w http.ResponseWriter, r *http.Request) {

	applicationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid application id", http.StatusBadRequest)
		return
	}
	fieldID := chi.URLParam(r, "fieldID")

	// the multipart envelope adds its own bytes around the largest allowed file
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+(1<<20))
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		http.Error(w, "file exceeds the maximum allowed size", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file part", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		http.Error(w, "file exceeds the maximum allowed size", http.StatusRequestEntityTooLarge)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	result, uploadErr := h.uploadService.UploadDocument(r.Context(), applicationID, fieldID, port.FileUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		SizeBytes:   header.Size,
		Content:     file,
	})
	switch {
	case errors.Is(uploadErr, domain.ErrUnknownUploadField):
		http.Error(w, "unknown upload field", http.StatusBadRequest)
	case errors.Is(uploadErr, domain.ErrApplicationNotFound):
		http.Error(w, "application not found", http.StatusNotFound)
	case errors.Is(uploadErr, domain.ErrUnsafeFile):
		h.logger.Warn("upload rejected by security scan", "application_id", applicationID, "field", fieldID)
		http.Error(w, "Security alert: this file did not pass our security scan and was removed. Please upload a different file.", http.StatusUnprocessableEntity)
	case errors.Is(uploadErr, domain.ErrScanTimeout):
		h.logger.Error("scan verdict timed out", "application_id", applicationID, "field", fieldID)
		http.Error(w, "The security scan is taking longer than expected. Please try again.", http.StatusGatewayTimeout)
	case errors.Is(uploadErr, domain.ErrCredentialUnavailable):
		h.logger.Error("credential unavailable", "error", uploadErr)
		http.Error(w, "Our system is temporarily unavailable. Please try again later.", http.StatusServiceUnavailable)
	case errors.Is(uploadErr, domain.ErrAuthRejected):
		h.logger.Error("upload authorization rejected", "error", uploadErr)
		http.Error(w, "Your upload could not be authorized. Please try again later.", http.StatusBadGateway)
	case errors.Is(uploadErr, domain.ErrStagingFailed), errors.Is(uploadErr, domain.ErrTransferFailed):
		h.logger.Error("document transfer failed", "error", uploadErr)
		http.Error(w, "Your file could not be uploaded. Please try again.", http.StatusBadGateway)
	case uploadErr != nil:
		h.logger.Error("error uploading document", "error", uploadErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
	default:
		resp := V1UploadDocumentResponse{
			FinalKey: result.FinalKey,
			Filename: result.Filename,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
