package application

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/codecraftwt/eazecap/internal/core/domain"
)

// V1EstimateResponse is the repayment estimate for a requested loan amount
type V1EstimateResponse struct {
	Amount         float64 `json:"amount"`
	TermMonths     int     `json:"termMonths"`
	MonthlyPayment float64 `json:"monthlyPayment"`
}

// EstimateV1 returns the estimated monthly repayment for a loan amount
func (h *HandlerV1) EstimateV1(w http.ResponseWriter, r *http.Request) {

	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil || amount <= 0 {
		http.Error(w, "amount must be a positive number", http.StatusBadRequest)
		return
	}

	// the response echoes the term the estimate was computed for
	termMonths := domain.DefaultTermMonths
	if raw := r.URL.Query().Get("termMonths"); raw != "" {
		termMonths, err = strconv.Atoi(raw)
		if err != nil || termMonths <= 0 {
			http.Error(w, "termMonths must be a positive number", http.StatusBadRequest)
			return
		}
	}

	monthly := h.applicationService.EstimateRepayment(amount, termMonths)

	resp := V1EstimateResponse{
		Amount:         amount,
		TermMonths:     termMonths,
		MonthlyPayment: monthly,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
