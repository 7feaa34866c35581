// src/parsers/parser.go
package parsers

import (
	"math"
	"strconv"
	"strings"

	"github.com/username/dopconv/src/models"
)

// RateParser reads the USD to DOP rate out of one kind of source page.
type RateParser interface {
	Name() string
	Parse(document string) (models.ExtractedRate, error)
}

// ExtractRate tries every known page layout and returns the first rate
// found. A page that has a rate location with a bad value fails right away,
// it does not fall through to the next layout.
func ExtractRate(document string) (models.ExtractedRate, error) {
	return defaultChain.Parse(document)
}

// parseRateText parses a located rate value, allowing grouping commas.
func parseRateText(strategy, raw string) (models.ExtractedRate, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return models.ExtractedRate{}, invalidRate(strategy, raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return models.ExtractedRate{}, invalidRate(strategy, raw, nil)
	}
	return models.ExtractedRate{Value: v, Raw: strings.TrimSpace(raw), Strategy: strategy}, nil
}
