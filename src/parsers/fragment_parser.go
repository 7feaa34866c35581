package parsers

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/username/dopconv/src/models"
)

const StrategyFragment = "fragment"

const quoteRecordPattern = `\{\s*"nombre"\s*:\s*"[^"]*"\s*,\s*"compra"\s*:\s*"[^"]*"\s*,\s*"venta"\s*:\s*"[^"]*"\s*\}`

// ratesFragmentRe matches {"monedas": [{"nombre", "compra", "venta"}, ...]}
// as embedded in the source page's inline script.
var ratesFragmentRe = regexp.MustCompile(
	`\{\s*"monedas"\s*:\s*\[\s*` + quoteRecordPattern + `(?:\s*,\s*` + quoteRecordPattern + `)*\s*\]\s*\}`)

// FragmentParser reads the buy rate of the USD record from a JSON rates
// fragment embedded in the page.
type FragmentParser struct {
	Currency string
}

func NewFragmentParser() *FragmentParser {
	return &FragmentParser{Currency: "USD"}
}

func (p *FragmentParser) Name() string { return StrategyFragment }

func (p *FragmentParser) Parse(document string) (models.ExtractedRate, error) {
	match := ratesFragmentRe.FindString(document)
	if match == "" {
		return models.ExtractedRate{}, notFound(StrategyFragment, MsgRateNotFound)
	}

	var fragment models.RatesFragment
	if err := json.Unmarshal([]byte(match), &fragment); err != nil {
		return models.ExtractedRate{}, invalidRate(StrategyFragment, match, fmt.Errorf("decoding rates fragment: %w", err))
	}

	for _, quote := range fragment.Currencies {
		if quote.Name == p.Currency {
			return parseRateText(StrategyFragment, quote.Buy)
		}
	}
	if p.Currency == "USD" {
		return models.ExtractedRate{}, notFound(StrategyFragment, MsgUSDRateNotFound)
	}
	return models.ExtractedRate{}, notFound(StrategyFragment, fmt.Sprintf("Could not find %s exchange rate", p.Currency))
}
