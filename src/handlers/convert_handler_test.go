package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/username/dopconv/src/models"
	"github.com/username/dopconv/src/parsers"
	"github.com/username/dopconv/src/services"
)

type stubRateSource struct {
	rate models.ExtractedRate
	err  error
}

func (s *stubRateSource) CurrentRate(ctx context.Context) (models.ExtractedRate, error) {
	return s.rate, s.err
}

func newTestRouter(source services.RateSource, limiter *rate.Limiter) http.Handler {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	h := NewConvertHandler(services.NewConversionService(source), source)
	return NewRouter(h, limiter, 5*time.Second)
}

func okSource() *stubRateSource {
	return &stubRateSource{rate: models.ExtractedRate{Value: 62.30, Raw: "RD$ 62.30", Strategy: parsers.StrategyLabeled}}
}

func TestHandleConvert(t *testing.T) {
	router := newTestRouter(okSource(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/convert?q=1,000+63.25", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("ETag"))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	var resp models.ScriptFilterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "💱 Capla: 1,000 USD = 61,895.05 DOP", resp.Items[0].Title)
	assert.Equal(t, "63,250", resp.Items[1].Arg)
}

func TestHandleConvert_NotModified(t *testing.T) {
	router := newTestRouter(okSource(), nil)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/convert?q=500", nil))
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/api/convert?q=500", nil)
	req.Header.Set("If-None-Match", etag)
	second := httptest.NewRecorder()
	router.ServeHTTP(second, req)

	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Zero(t, second.Body.Len())
}

func TestHandleConvert_ErrorsAreItems(t *testing.T) {
	router := newTestRouter(&stubRateSource{err: &services.FetchError{URL: "https://example.test", StatusCode: 502}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/convert?q=1000", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ScriptFilterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Error fetching exchange rates", resp.Items[0].Title)
	assert.False(t, resp.Items[0].Valid)
}

func TestHandleGetRate(t *testing.T) {
	router := newTestRouter(okSource(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rate", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.ExtractedRate
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 62.30, got.Value)
	assert.Equal(t, parsers.StrategyLabeled, got.Strategy)
}

func TestHandleGetRate_Failure(t *testing.T) {
	source := &stubRateSource{err: &parsers.ExtractionError{Kind: parsers.KindNotFound, Message: parsers.MsgRateNotFound}}
	router := newTestRouter(source, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rate", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, parsers.MsgRateNotFound, body["error"])
}

func TestRateLimitMiddleware(t *testing.T) {
	router := newTestRouter(okSource(), rate.NewLimiter(0, 1))

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/convert?q=100", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/convert?q=100", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	health := httptest.NewRecorder()
	router.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, health.Code, "health checks are not rate limited")
}

func TestRequestIDMiddleware_KeepsIncomingID(t *testing.T) {
	router := newTestRouter(okSource(), nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}
