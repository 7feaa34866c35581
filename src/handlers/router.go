package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// NewRouter wires the HTTP mode routes. timeout bounds each API request,
// including the rate fetch it may trigger.
func NewRouter(h *ConvertHandler, limiter *rate.Limiter, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	r.Get("/healthz", HandleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(RateLimitMiddleware(limiter))
		api.Use(middleware.Timeout(timeout))
		api.Get("/convert", h.HandleConvert)
		api.Get("/rate", h.HandleGetRate)
	})
	return r
}
