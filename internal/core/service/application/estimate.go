package application

import (
	"math"

	"github.com/codecraftwt/eazecap/internal/core/domain"
)

const annualRate = 0.059

// EstimateRepayment computes the amortized monthly payment for a principal at
// the advertised 5.9% annual rate.
func (s *applicationService) EstimateRepayment(amount float64, termMonths int) float64 {
	if amount <= 0 {
		return 0
	}
	if termMonths <= 0 {
		termMonths = domain.DefaultTermMonths
	}

	monthlyRate := annualRate / 12
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	return amount * monthlyRate * factor / (factor - 1)
}
