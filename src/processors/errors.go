package processors

import "fmt"

type InputErrorKind int

const (
	InputMissingAmount InputErrorKind = iota
	InputInvalidAmount
	InputInvalidBankRate
)

const (
	usageExample         = `Example: "1,000" or "1,000 63.25" (with optional bank rate)`
	bankRateUsageExample = `Example: "1,000 63.25"`
)

// InputError is a user-facing validation problem. Title and Subtitle are
// shown as-is by the launcher.
type InputError struct {
	Kind     InputErrorKind
	Title    string
	Subtitle string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Title, e.Subtitle)
}

func newInputError(kind InputErrorKind) *InputError {
	switch kind {
	case InputMissingAmount:
		return &InputError{Kind: kind, Title: "Enter an amount to convert", Subtitle: usageExample}
	case InputInvalidAmount:
		return &InputError{Kind: kind, Title: "Please enter a valid number", Subtitle: usageExample}
	default:
		return &InputError{Kind: InputInvalidBankRate, Title: "Please enter a valid bank rate as second argument", Subtitle: bankRateUsageExample}
	}
}
