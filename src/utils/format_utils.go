package utils

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatAmount renders n like "1,234.56". A ".00" fraction is dropped, so
// 1000 renders "1,000" and -1000 renders "-1,000". The integer digits are
// grouped as a big.Int, so amounts past the int64 range keep their value.
func FormatAmount(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}

	digits := strconv.FormatFloat(math.Abs(n), 'f', 2, 64)
	intPart, frac, _ := strings.Cut(digits, ".")
	whole, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return digits
	}

	s := humanize.BigComma(whole)
	if frac != "00" {
		s += "." + frac
	}
	if n < 0 && s != "0" {
		s = "-" + s
	}
	return s
}

// FormatRate renders an exchange rate with at least two decimals and no
// grouping: 62.3 -> "62.30", 58.4521 -> "58.4521".
func FormatRate(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	switch {
	case dot < 0:
		return s + ".00"
	case len(s)-dot-1 < 2:
		return s + strings.Repeat("0", 2-(len(s)-dot-1))
	}
	return s
}
