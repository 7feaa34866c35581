package processors

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    float64
		present bool
		isNaN   bool
	}{
		{name: "plain integer", text: "1000", want: 1000, present: true},
		{name: "small integer", text: "250", want: 250, present: true},
		{name: "decimal", text: "1.5", want: 1.5, present: true},
		{name: "grouped thousands", text: "1,000", want: 1000, present: true},
		{name: "grouped ten thousands", text: "10,000", want: 10000, present: true},
		{name: "grouped millions", text: "1,234,567", want: 1234567, present: true},
		{name: "grouped with decimals", text: "1,000.50", want: 1000.50, present: true},
		{name: "grouped with cents", text: "12,345.67", want: 12345.67, present: true},
		{name: "negative", text: "-100", want: -100, present: true},
		{name: "empty is absent", text: "", present: false},
		{name: "letters", text: "abc", present: true, isNaN: true},
		{name: "trailing letters", text: "12abc", present: true, isNaN: true},
		{name: "only separators", text: ",,", present: true, isNaN: true},
		{name: "infinity word", text: "inf", present: true, isNaN: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, present := ParseAmountText(tt.text)
			assert.Equal(t, tt.present, present)
			if tt.isNaN {
				assert.True(t, math.IsNaN(got), "expected NaN, got %v", got)
				return
			}
			if tt.present {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseAmountText_CleanTextMatchesParseFloat(t *testing.T) {
	for _, text := range []string{"0", "1", "42.5", "999.99", "0.01", "63.25", "1e3"} {
		want, err := strconv.ParseFloat(text, 64)
		require.NoError(t, err)

		got, present := ParseAmountText(text)
		require.True(t, present)
		assert.Equal(t, want, got, text)

		again, _ := ParseAmountText(strconv.FormatFloat(got, 'f', -1, 64))
		assert.Equal(t, got, again, "reparsing %q", text)
	}
}

func TestValidateInputs(t *testing.T) {
	t.Run("valid amount and bank rate", func(t *testing.T) {
		in := ValidateInputs("1000", "63.25")
		require.NotNil(t, in.Amount)
		require.NotNil(t, in.BankRate)
		assert.Equal(t, 1000.0, *in.Amount)
		assert.Equal(t, 63.25, *in.BankRate)
		assert.True(t, in.IsValidAmount)
		assert.True(t, in.IsValidBankRate)
		assert.True(t, in.BankRatePresent)
	})

	t.Run("grouped amount", func(t *testing.T) {
		grouped := ValidateInputs("1,000", "63.25")
		plain := ValidateInputs("1000", "63.25")
		assert.Equal(t, *plain.Amount, *grouped.Amount)
		assert.True(t, grouped.IsValidAmount)
	})

	t.Run("missing bank rate is not an error", func(t *testing.T) {
		in := ValidateInputs("250", "")
		require.NotNil(t, in.Amount)
		assert.Equal(t, 250.0, *in.Amount)
		assert.Nil(t, in.BankRate)
		assert.True(t, in.IsValidAmount)
		assert.False(t, in.IsValidBankRate)
		assert.False(t, in.BankRatePresent)
	})

	t.Run("zero and negative amounts", func(t *testing.T) {
		assert.False(t, ValidateInputs("0", "").IsValidAmount)
		assert.False(t, ValidateInputs("-100", "").IsValidAmount)
	})

	t.Run("unparseable tokens", func(t *testing.T) {
		assert.False(t, ValidateInputs("abc", "").IsValidAmount)

		in := ValidateInputs("100", "invalid")
		assert.True(t, in.IsValidAmount)
		assert.True(t, in.BankRatePresent)
		assert.False(t, in.IsValidBankRate)
	})

	t.Run("zero and negative bank rates", func(t *testing.T) {
		assert.False(t, ValidateInputs("100", "0").IsValidBankRate)
		assert.False(t, ValidateInputs("100", "-5").IsValidBankRate)
	})
}

func TestSplitQuery(t *testing.T) {
	raw := SplitQuery("  1,000   63.25  extra")
	assert.Equal(t, "1,000", raw.AmountText)
	assert.Equal(t, "63.25", raw.BankRateText)

	raw = SplitQuery("500\t62")
	assert.Equal(t, "500", raw.AmountText)
	assert.Equal(t, "62", raw.BankRateText)

	raw = SplitQuery("")
	assert.Empty(t, raw.AmountText)
	assert.Empty(t, raw.BankRateText)
}

func TestCheckInput(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantKind  InputErrorKind
		wantTitle string
		wantErr   bool
	}{
		{name: "empty query", query: "", wantErr: true, wantKind: InputMissingAmount, wantTitle: "Enter an amount to convert"},
		{name: "blank query", query: "   ", wantErr: true, wantKind: InputMissingAmount, wantTitle: "Enter an amount to convert"},
		{name: "letters", query: "abc", wantErr: true, wantKind: InputInvalidAmount, wantTitle: "Please enter a valid number"},
		{name: "zero amount", query: "0", wantErr: true, wantKind: InputInvalidAmount, wantTitle: "Please enter a valid number"},
		{name: "bad bank rate", query: "1000 abc", wantErr: true, wantKind: InputInvalidBankRate, wantTitle: "Please enter a valid bank rate as second argument"},
		{name: "zero bank rate", query: "1000 0", wantErr: true, wantKind: InputInvalidBankRate, wantTitle: "Please enter a valid bank rate as second argument"},
		{name: "amount only", query: "1,000"},
		{name: "amount and bank rate", query: "1,000 63.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := CheckInput(SplitQuery(tt.query))
			if !tt.wantErr {
				require.NoError(t, err)
				assert.True(t, in.IsValidAmount)
				return
			}
			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.wantKind, inputErr.Kind)
			assert.Equal(t, tt.wantTitle, inputErr.Title)
			assert.Contains(t, inputErr.Subtitle, "Example:")
		})
	}
}
