// src/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dopconv_conversions_total",
			Help: "Total number of conversion queries by outcome",
		},
		[]string{"outcome"}, // ok, input_error, fetch_error, extraction_error
	)

	RateFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dopconv_rate_fetch_total",
			Help: "Total number of rate source fetches by result",
		},
		[]string{"result"}, // ok, error, cache_hit
	)

	RateFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dopconv_rate_fetch_duration_seconds",
			Help:    "Duration of rate source fetch and extraction in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
