package processors

import (
	"fmt"
	"math"

	"github.com/username/dopconv/src/models"
	"github.com/username/dopconv/src/utils"
)

const differenceSubtitle = "Difference between Capla and Bank rates"

// BuildOutput renders the conversion rows: the fee-adjusted Capla conversion
// first, then, when bankRate is positive, the bank conversion and the
// difference between the two.
func BuildOutput(amount, primaryRate float64, bankRate *float64) []models.DisplayItem {
	fees := CalculateFees(amount)
	caplaConversion := fees.NetAmount * primaryRate

	output := []models.DisplayItem{{
		Title: fmt.Sprintf("💱 Capla: %s USD = %s DOP", utils.FormatAmount(amount), utils.FormatAmount(caplaConversion)),
		Subtitle: fmt.Sprintf("Fees: $%s + $%s tax = -$%s | Rate: %s DOP",
			utils.FormatAmount(fees.FixedFee), utils.FormatAmount(fees.Tax),
			utils.FormatAmount(fees.TotalDeductions), utils.FormatRate(primaryRate)),
		Arg:   utils.FormatAmount(caplaConversion),
		Valid: true,
	}}

	if bankRate == nil || !isPositive(*bankRate) {
		return output
	}

	bankConversion := amount * *bankRate
	difference := caplaConversion - bankConversion

	output = append(output, models.DisplayItem{
		Title:    fmt.Sprintf("🏦 Bank: %s USD = %s DOP", utils.FormatAmount(amount), utils.FormatAmount(bankConversion)),
		Subtitle: fmt.Sprintf("No fees | Rate: %s DOP", utils.FormatRate(*bankRate)),
		Arg:      utils.FormatAmount(bankConversion),
		Valid:    true,
	})

	label := "📉 Loss"
	if difference > 0 {
		label = "📈 Gain"
	}
	absDifference := utils.FormatAmount(math.Abs(difference))
	output = append(output, models.DisplayItem{
		Title:    fmt.Sprintf("%s: %s DOP", label, absDifference),
		Subtitle: differenceSubtitle,
		Arg:      absDifference,
		Valid:    true,
	})

	return output
}
