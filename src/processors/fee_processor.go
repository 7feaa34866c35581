// src/processors/fee_processor.go
package processors

import (
	"github.com/username/dopconv/src/models"
)

const (
	FixedFee = 5      // USD per transfer
	TaxRate  = 0.0015 // 0.15% of the amount
)

// CalculateFees applies the fixed fee and the tax to amount. Any amount is
// accepted; zero or negative input yields a negative NetAmount.
func CalculateFees(amount float64) models.FeeBreakdown {
	tax := amount * TaxRate
	totalDeductions := FixedFee + tax

	return models.FeeBreakdown{
		Tax:             tax,
		FixedFee:        FixedFee,
		TotalDeductions: totalDeductions,
		NetAmount:       amount - totalDeductions,
	}
}
