package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/username/dopconv/src/config"
	"github.com/username/dopconv/src/logger"
	"github.com/username/dopconv/src/parsers"
	"github.com/username/dopconv/src/services"
)

var (
	logLevel string
	cfgErr   error
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "dopconv",
		Short:        "USD to DOP conversion for launcher script filters",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A config error is kept rather than returned so convert can
			// still answer with an item.
			cfgErr = config.LoadConfig()
			level := logLevel
			if level == "" && config.Cfg != nil {
				level = config.Cfg.LogLevel
			}
			if level == "" {
				level = "warn"
			}
			logger.InitLoggerTo(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")

	root.AddCommand(convertCmd(), rateCmd(), serveCmd())
	return root
}

// newRateSource builds the uncached rate source from config.
func newRateSource() (services.RateSource, error) {
	parser, err := parsers.GetParser(config.Cfg.RateStrategy)
	if err != nil {
		return nil, err
	}
	fetcher := services.NewRateFetcher(config.Cfg.UserAgent, outboundLimiter())
	return services.NewRateSource(fetcher, parser, config.Cfg.RateSourceURL), nil
}

// outboundLimiter keeps the HTTP mode from hammering the source when the
// cache is cold; one request a second with a small burst.
func outboundLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Second), 3)
}

func withFetchTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, config.Cfg.FetchTimeout)
}
