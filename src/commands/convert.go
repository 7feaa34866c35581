package commands

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/username/dopconv/src/logger"
	"github.com/username/dopconv/src/models"
	"github.com/username/dopconv/src/services"
)

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [amount] [bank-rate]",
		Short: "Print Script Filter JSON for a query such as \"1,000 63.25\"",
		Long: "Reads the launcher query from the arguments (joined with spaces) and prints\n" +
			"Script Filter JSON on stdout. Errors are reported as a single non-actionable item.",
		// The query is passed through untouched; "-100" is an amount, not a flag.
		// Only a leading --log-level is recognized.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, args := splitLogLevel(args)
			if level != "" {
				logger.InitLoggerTo(cmd.ErrOrStderr(), level)
			}

			out := cmd.OutOrStdout()
			if cfgErr != nil {
				return writeItems(out, []models.DisplayItem{services.ErrorItem("Configuration error", cfgErr)})
			}

			source, err := newRateSource()
			if err != nil {
				return writeItems(out, []models.DisplayItem{services.ErrorItem("Configuration error", err)})
			}

			ctx, cancel := withFetchTimeout(cmd.Context())
			defer cancel()

			items := services.NewConversionService(source).Convert(ctx, strings.Join(args, " "))
			return writeItems(out, items)
		},
	}
	return cmd
}

func writeItems(w io.Writer, items []models.DisplayItem) error {
	return json.NewEncoder(w).Encode(models.ScriptFilterResponse{Items: items})
}

// splitLogLevel removes a leading "--log-level X" or "--log-level=X" from
// args, since flag parsing is off for convert.
func splitLogLevel(args []string) (string, []string) {
	if len(args) == 0 {
		return "", args
	}
	if level, ok := strings.CutPrefix(args[0], "--log-level="); ok {
		return level, args[1:]
	}
	if args[0] == "--log-level" && len(args) > 1 {
		return args[1], args[2:]
	}
	return "", args
}
