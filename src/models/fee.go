// src/models/fee.go
package models

// FeeBreakdown is the deduction detail for one transfer. NetAmount is not
// clamped and goes negative for amounts below the fixed fee.
type FeeBreakdown struct {
	Tax             float64 `json:"tax"`
	FixedFee        float64 `json:"fixed_fee"`
	TotalDeductions float64 `json:"total_deductions"`
	NetAmount       float64 `json:"net_amount"`
}
