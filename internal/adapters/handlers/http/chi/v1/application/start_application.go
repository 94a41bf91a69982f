package application

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/google/uuid"
)

// V1ApplicationResponse is the wire shape of a loan application
type V1ApplicationResponse struct {
	ID          uuid.UUID   `json:"id"`
	Status      string      `json:"status"`
	CurrentStep int         `json:"currentStep"`
	Form        domain.Form `json:"form"`
}

func toApplicationResponse(app *domain.Application) V1ApplicationResponse {
	return V1ApplicationResponse{
		ID:          app.ID,
		Status:      string(app.Status),
		CurrentStep: app.CurrentStep,
		Form:        app.Form,
	}
}

// StartApplicationV1 pre-qualifies the applicant and opens a draft application
func (h *HandlerV1) StartApplicationV1(w http.ResponseWriter, r *http.Request) {

	var form domain.Form

	err := json.NewDecoder(r.Body).Decode(&form)
	if err != nil {
		h.logger.Error("error decoding start application request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	app, startErr := h.applicationService.StartApplication(r.Context(), form)
	switch {
	case errors.Is(startErr, domain.ErrStateNotServiced):
		http.Error(w, "We currently do not provide loans in your state", http.StatusUnprocessableEntity)
	case errors.Is(startErr, domain.ErrValidation):
		http.Error(w, startErr.Error(), http.StatusBadRequest)
	case startErr != nil:
		h.logger.Error("error starting application", "error", startErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toApplicationResponse(app)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
