package application

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// SaveStepV1 validates and persists the answers for one wizard step
func (h *HandlerV1) SaveStepV1(w http.ResponseWriter, r *http.Request) {

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid application id", http.StatusBadRequest)
		return
	}

	step, err := strconv.Atoi(chi.URLParam(r, "step"))
	if err != nil {
		http.Error(w, "invalid step", http.StatusBadRequest)
		return
	}

	var form domain.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.logger.Error("error decoding save step request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	app, saveErr := h.applicationService.SaveStep(r.Context(), id, step, form)
	switch {
	case errors.Is(saveErr, domain.ErrApplicationNotFound):
		http.Error(w, "application not found", http.StatusNotFound)
	case errors.Is(saveErr, domain.ErrAlreadySubmitted):
		http.Error(w, "application already submitted", http.StatusConflict)
	case errors.Is(saveErr, domain.ErrValidation):
		http.Error(w, saveErr.Error(), http.StatusBadRequest)
	case saveErr != nil:
		h.logger.Error("error saving step", "error", saveErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toApplicationResponse(app)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
