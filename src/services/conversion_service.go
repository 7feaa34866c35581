package services

import (
	"context"
	"errors"

	"github.com/username/dopconv/src/logger"
	"github.com/username/dopconv/src/metrics"
	"github.com/username/dopconv/src/models"
	"github.com/username/dopconv/src/parsers"
	"github.com/username/dopconv/src/processors"
)

const errFetchTitle = "Error fetching exchange rates"

type conversionServiceImpl struct {
	rates RateSource
}

func NewConversionService(rates RateSource) ConversionService {
	return &conversionServiceImpl{rates: rates}
}

// Convert validates the query before touching the network, then fetches the
// rate once and builds the result rows.
func (s *conversionServiceImpl) Convert(ctx context.Context, query string) []models.DisplayItem {
	log := logger.FromContext(ctx)

	in, err := processors.CheckInput(processors.SplitQuery(query))
	if err != nil {
		metrics.ConversionsTotal.WithLabelValues("input_error").Inc()
		log.Debug("Rejected query", "query", query, "error", err)
		return []models.DisplayItem{errorItem(err)}
	}

	current, err := s.rates.CurrentRate(ctx)
	if err != nil {
		var extractErr *parsers.ExtractionError
		if errors.As(err, &extractErr) {
			metrics.ConversionsTotal.WithLabelValues("extraction_error").Inc()
		} else {
			metrics.ConversionsTotal.WithLabelValues("fetch_error").Inc()
		}
		log.Error("Could not obtain exchange rate", "error", err)
		return []models.DisplayItem{errorItem(err)}
	}

	var bankRate *float64
	if in.IsValidBankRate {
		bankRate = in.BankRate
	}

	metrics.ConversionsTotal.WithLabelValues("ok").Inc()
	return processors.BuildOutput(*in.Amount, current.Value, bankRate)
}

// errorItem converts any failure into the single informational row the
// launcher shows.
func errorItem(err error) models.DisplayItem {
	var inputErr *processors.InputError
	if errors.As(err, &inputErr) {
		return models.DisplayItem{Title: inputErr.Title, Subtitle: inputErr.Subtitle, Valid: false}
	}

	return models.DisplayItem{Title: errFetchTitle, Subtitle: UserMessage(err), Valid: false}
}

// UserMessage picks the text shown for a rate failure: the extractor's own
// message when there is one, otherwise a generic retry hint.
func UserMessage(err error) string {
	var extractErr *parsers.ExtractionError
	var fetchErr *FetchError
	switch {
	case errors.As(err, &extractErr) && extractErr.Message != "":
		return extractErr.Message
	case errors.As(err, &fetchErr):
		return fetchErr.UserMessage()
	}
	return msgTryAgainLater
}

// ErrorItem is exported for hosts that fail before a ConversionService exists,
// e.g. on a configuration error.
func ErrorItem(title string, err error) models.DisplayItem {
	subtitle := msgTryAgainLater
	if err != nil && err.Error() != "" {
		subtitle = err.Error()
	}
	return models.DisplayItem{Title: title, Subtitle: subtitle, Valid: false}
}
