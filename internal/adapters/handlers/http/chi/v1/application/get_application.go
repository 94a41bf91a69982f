package application

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetApplicationV1 returns the current state of an application
func (h *HandlerV1) GetApplicationV1(w http.ResponseWriter, r *http.Request) {

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid application id", http.StatusBadRequest)
		return
	}

	app, getErr := h.applicationService.GetApplication(r.Context(), id)
	switch {
	case errors.Is(getErr, domain.ErrApplicationNotFound):
		http.Error(w, "application not found", http.StatusNotFound)
	case getErr != nil:
		h.logger.Error("error fetching application", "error", getErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toApplicationResponse(app)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
