package services

import (
	"context"

	"github.com/username/dopconv/src/models"
)

// RateFetcher retrieves a source document as text.
type RateFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// RateSource yields the current USD to DOP rate.
type RateSource interface {
	CurrentRate(ctx context.Context) (models.ExtractedRate, error)
}

// ConversionService turns a launcher query into display items. It never
// fails: problems are reported as a single item with Valid set to false.
type ConversionService interface {
	Convert(ctx context.Context, query string) []models.DisplayItem
}
