package processors

import (
	"math"
	"strconv"
	"strings"

	"github.com/username/dopconv/src/models"
	"github.com/username/dopconv/src/security/validation"
)

// ParseAmountText removes grouping commas and parses text as a decimal.
// present is false for empty text. Unparseable text returns NaN with
// present true, so callers must check math.IsNaN before using the value.
func ParseAmountText(text string) (value float64, present bool) {
	if text == "" {
		return 0, false
	}
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	if cleaned == "" {
		return math.NaN(), true
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN(), true
	}
	return v, true
}

// ValidateInputs parses both tokens. An absent bank rate is not flagged as
// present, which keeps it apart from a bank rate that failed to parse.
func ValidateInputs(amountText, bankRateText string) models.ValidatedInput {
	var in models.ValidatedInput

	if amount, ok := ParseAmountText(amountText); ok {
		in.Amount = &amount
		in.IsValidAmount = isPositive(amount)
	}
	if bankRate, ok := ParseAmountText(bankRateText); ok {
		in.BankRate = &bankRate
		in.BankRatePresent = true
		in.IsValidBankRate = isPositive(bankRate)
	}
	return in
}

// SplitQuery turns the launcher query into its amount and bank rate tokens.
// Extra tokens are ignored.
func SplitQuery(query string) models.RawInput {
	fields := strings.Fields(validation.SanitizeQuery(query))
	var raw models.RawInput
	if len(fields) > 0 {
		raw.AmountText = fields[0]
	}
	if len(fields) > 1 {
		raw.BankRateText = fields[1]
	}
	return raw
}

// CheckInput validates raw and reports the first problem as an *InputError.
func CheckInput(raw models.RawInput) (models.ValidatedInput, error) {
	in := ValidateInputs(raw.AmountText, raw.BankRateText)
	switch {
	case raw.AmountText == "":
		return in, newInputError(InputMissingAmount)
	case !in.IsValidAmount:
		return in, newInputError(InputInvalidAmount)
	case in.BankRatePresent && !in.IsValidBankRate:
		return in, newInputError(InputInvalidBankRate)
	}
	return in, nil
}

func isPositive(v float64) bool {
	return !math.IsNaN(v) && v > 0
}
