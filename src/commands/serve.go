package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/username/dopconv/src/config"
	"github.com/username/dopconv/src/handlers"
	"github.com/username/dopconv/src/logger"
	"github.com/username/dopconv/src/services"
)

func serveCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve conversions over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			if port == "" {
				port = config.Cfg.Port
			}

			source, err := newRateSource()
			if err != nil {
				return err
			}
			cached := services.NewCachedRateSource(source, config.Cfg.RateSourceURL, config.Cfg.RateCacheTTL)
			convertHandler := handlers.NewConvertHandler(services.NewConversionService(cached), cached)

			limiter := rate.NewLimiter(rate.Limit(config.Cfg.RateLimitRPS), config.Cfg.RateLimitBurst)
			server := &http.Server{
				Addr:         ":" + port,
				Handler:      handlers.NewRouter(convertHandler, limiter, config.Cfg.FetchTimeout),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: config.Cfg.FetchTimeout + 5*time.Second,
				IdleTimeout:  60 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.L.Info("Server starting", "address", server.Addr, "source", config.Cfg.RateSourceURL)
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.L.Error("Failed to start server", "error", err)
					return err
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			logger.L.Info("Server stopped gracefully.")
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default $PORT or 8080)")
	return cmd
}
