// src/services/rate_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"github.com/username/dopconv/src/logger"
	"github.com/username/dopconv/src/metrics"
	"github.com/username/dopconv/src/models"
	"github.com/username/dopconv/src/parsers"
	"github.com/username/dopconv/src/security/validation"
)

// httpRateFetcher downloads rate source pages. The cookie jar keeps any
// session cookie the source sets on the first response.
type httpRateFetcher struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// NewRateFetcher creates a fetcher. Timeouts come from the caller's context.
// limiter may be nil.
func NewRateFetcher(userAgent string, limiter *rate.Limiter) RateFetcher {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		logger.L.Error("Failed to create cookie jar", "error", err)
	}
	return &httpRateFetcher{
		httpClient: &http.Client{Jar: jar},
		userAgent:  userAgent,
		limiter:    limiter,
	}
}

func (f *httpRateFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", &FetchError{URL: url, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}
	if err := validation.ValidateDocumentContentType(resp.Header.Get("Content-Type")); err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, validation.MaxDocumentBytes))
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return string(body), nil
}

// rateSourceImpl fetches the configured page once per call and extracts the rate.
type rateSourceImpl struct {
	fetcher RateFetcher
	parser  parsers.RateParser
	url     string
}

func NewRateSource(fetcher RateFetcher, parser parsers.RateParser, url string) RateSource {
	return &rateSourceImpl{fetcher: fetcher, parser: parser, url: url}
}

func (s *rateSourceImpl) CurrentRate(ctx context.Context) (models.ExtractedRate, error) {
	start := time.Now()
	log := logger.FromContext(ctx)

	document, err := s.fetcher.Fetch(ctx, s.url)
	metrics.RateFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RateFetchTotal.WithLabelValues("error").Inc()
		log.Warn("Rate fetch failed", "url", s.url, "error", err)
		return models.ExtractedRate{}, err
	}

	extracted, err := s.parser.Parse(document)
	if err != nil {
		metrics.RateFetchTotal.WithLabelValues("error").Inc()
		kind := "unknown"
		var extractErr *parsers.ExtractionError
		if errors.As(err, &extractErr) {
			kind = extractErr.Kind.String()
		}
		log.Warn("Rate extraction failed", "url", s.url, "parser", s.parser.Name(), "kind", kind, "error", err)
		return models.ExtractedRate{}, fmt.Errorf("extracting rate from %s: %w", s.url, err)
	}

	metrics.RateFetchTotal.WithLabelValues("ok").Inc()
	log.Debug("Rate extracted", "url", s.url, "rate", extracted.Value, "strategy", extracted.Strategy, "duration", time.Since(start))
	return extracted, nil
}

const (
	ckCurrentRate        = "rate_%s"
	CacheCleanupInterval = 10 * time.Minute
)

// cachedRateSource keeps the last good rate for ttl. Failures are not cached.
type cachedRateSource struct {
	inner RateSource
	cache *cache.Cache
	key   string
}

// NewCachedRateSource wraps inner with a TTL cache. Used by the HTTP mode,
// where many queries arrive in a short time.
func NewCachedRateSource(inner RateSource, url string, ttl time.Duration) RateSource {
	return &cachedRateSource{
		inner: inner,
		cache: cache.New(ttl, CacheCleanupInterval),
		key:   fmt.Sprintf(ckCurrentRate, url),
	}
}

func (s *cachedRateSource) CurrentRate(ctx context.Context) (models.ExtractedRate, error) {
	if cached, found := s.cache.Get(s.key); found {
		if r, ok := cached.(models.ExtractedRate); ok {
			metrics.RateFetchTotal.WithLabelValues("cache_hit").Inc()
			return r, nil
		}
	}
	r, err := s.inner.CurrentRate(ctx)
	if err != nil {
		return models.ExtractedRate{}, err
	}
	s.cache.SetDefault(s.key, r)
	return r, nil
}
