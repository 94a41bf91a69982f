package application

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1SubmitResponse acknowledges a successful submission
type V1SubmitResponse struct {
	Status string `json:"status"`
}

// SubmitV1 sends the completed application to the CRM backend
func (h *HandlerV1) SubmitV1(w http.ResponseWriter, r *http.Request) {

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid application id", http.StatusBadRequest)
		return
	}

	submitErr := h.applicationService.Submit(r.Context(), id)
	switch {
	case errors.Is(submitErr, domain.ErrApplicationNotFound):
		http.Error(w, "application not found", http.StatusNotFound)
	case errors.Is(submitErr, domain.ErrAlreadySubmitted):
		http.Error(w, "application already submitted", http.StatusConflict)
	case errors.Is(submitErr, domain.ErrValidation):
		http.Error(w, submitErr.Error(), http.StatusBadRequest)
	case errors.Is(submitErr, domain.ErrCredentialUnavailable), errors.Is(submitErr, domain.ErrCRMUnavailable):
		h.logger.Error("submission backend unavailable", "error", submitErr)
		http.Error(w, "Our system is temporarily unavailable. Please try again later.", http.StatusServiceUnavailable)
	case errors.Is(submitErr, domain.ErrSubmissionRejected):
		h.logger.Error("submission rejected", "error", submitErr)
		http.Error(w, "Your application could not be submitted. Please review your answers and try again.", http.StatusUnprocessableEntity)
	case submitErr != nil:
		h.logger.Error("error submitting application", "error", submitErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(V1SubmitResponse{Status: "submitted"}); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
