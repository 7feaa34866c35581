package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

type AppConfig struct {
	RateSourceURL string
	RateStrategy  string // auto, fragment or labeled
	FetchTimeout  time.Duration
	UserAgent     string
	LogLevel      string

	// Used by the serve command only.
	Port           string
	RateCacheTTL   time.Duration
	RateLimitRPS   int
	RateLimitBurst int
}

var Cfg *AppConfig

// LoadConfig reads .env (if any) and the process environment into Cfg.
// Messages go through the standard logger, which writes to stderr, so the
// launcher output on stdout stays untouched.
func LoadConfig() error {
	if errEnv := godotenv.Load(); errEnv != nil {
		debugf("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any): %v", errEnv)
	}

	cfg := &AppConfig{
		RateSourceURL:  getEnv("RATE_SOURCE_URL", "https://www.moneycorps.com.do/"),
		RateStrategy:   strings.ToLower(getEnv("RATE_STRATEGY", "auto")),
		FetchTimeout:   getEnvAsDuration("FETCH_TIMEOUT", 10*time.Second),
		UserAgent:      getEnv("USER_AGENT", defaultUserAgent),
		LogLevel:       getEnv("LOG_LEVEL", "warn"),
		Port:           getEnv("PORT", "8080"),
		RateCacheTTL:   getEnvAsDuration("RATE_CACHE_TTL", 5*time.Minute),
		RateLimitRPS:   getEnvAsInt("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 20),
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	Cfg = cfg
	debugf("Configuration loaded: Source=%s, Strategy=%s, Timeout=%s, LogLevel=%s",
		Cfg.RateSourceURL, Cfg.RateStrategy, Cfg.FetchTimeout, Cfg.LogLevel)
	return nil
}

func (c *AppConfig) validate() error {
	u, err := url.Parse(c.RateSourceURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("RATE_SOURCE_URL must be an absolute http(s) URL, got %q", c.RateSourceURL)
	}
	switch c.RateStrategy {
	case "auto", "fragment", "labeled":
	default:
		return fmt.Errorf("RATE_STRATEGY must be one of auto, fragment, labeled, got %q", c.RateStrategy)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", c.FetchTimeout)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// debugf only prints when DOPCONV_DEBUG_CONFIG is set; the launcher runs
// this binary on every keystroke.
func debugf(format string, args ...any) {
	if os.Getenv("DOPCONV_DEBUG_CONFIG") != "" {
		log.Printf(format, args...)
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	debugf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
