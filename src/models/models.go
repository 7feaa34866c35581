package models

// RawInput holds the two tokens split from the launcher query.
type RawInput struct {
	AmountText   string
	BankRateText string
}

// ValidatedInput is the parsed form of RawInput. Amount and BankRate are nil
// when their token was absent. A present token that failed to parse leaves
// the pointer set to NaN and the matching Is* flag false.
type ValidatedInput struct {
	Amount          *float64
	BankRate        *float64
	IsValidAmount   bool
	IsValidBankRate bool
	BankRatePresent bool
}

// DisplayItem is one Script Filter result row.
type DisplayItem struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Arg      string `json:"arg,omitempty"`
	Valid    bool   `json:"valid"`
}

// ScriptFilterResponse is the envelope the launcher reads from stdout.
type ScriptFilterResponse struct {
	Items []DisplayItem `json:"items"`
}
