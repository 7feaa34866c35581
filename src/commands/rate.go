package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/username/dopconv/src/config"
	"github.com/username/dopconv/src/utils"
)

func rateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Fetch the source page and print the extracted rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			source, err := newRateSource()
			if err != nil {
				return err
			}

			ctx, cancel := withFetchTimeout(cmd.Context())
			defer cancel()

			current, err := source.CurrentRate(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rate: %s DOP (%s, %q from %s)\n",
				utils.FormatRate(current.Value), current.Strategy, current.Raw, config.Cfg.RateSourceURL)
			return nil
		},
	}
	return cmd
}
