// src/parsers/factory.go
package parsers

import (
	"errors"
	"fmt"

	"github.com/username/dopconv/src/models"
)

const StrategyAuto = "auto"

var defaultChain = NewChain(NewFragmentParser(), NewLabeledParser())

// GetParser returns the parser for a configured strategy name. "auto" tries
// every layout in turn.
func GetParser(strategy string) (RateParser, error) {
	switch strategy {
	case StrategyAuto, "":
		return defaultChain, nil
	case StrategyFragment:
		return NewFragmentParser(), nil
	case StrategyLabeled:
		return NewLabeledParser(), nil
	default:
		return nil, fmt.Errorf("no rate parser available for strategy: %s", strategy)
	}
}

// Chain runs parsers in order until one locates a rate.
type Chain struct {
	parsers []RateParser
}

func NewChain(parsers ...RateParser) *Chain {
	return &Chain{parsers: parsers}
}

func (c *Chain) Name() string { return StrategyAuto }

func (c *Chain) Parse(document string) (models.ExtractedRate, error) {
	var specific *ExtractionError
	for _, p := range c.parsers {
		rate, err := p.Parse(document)
		if err == nil {
			return rate, nil
		}
		var extractErr *ExtractionError
		if !errors.As(err, &extractErr) || extractErr.Kind != KindNotFound {
			return models.ExtractedRate{}, err
		}
		// Keep a message more precise than the generic one, e.g. a rates
		// fragment that has no USD record.
		if specific == nil && extractErr.Message != MsgRateNotFound {
			specific = extractErr
		}
	}
	if specific != nil {
		return models.ExtractedRate{}, specific
	}
	return models.ExtractedRate{}, notFound("", MsgRateNotFound)
}
