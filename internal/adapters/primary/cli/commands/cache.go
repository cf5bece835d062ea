package commands

import (
	"fmt"

	"github.com/parths19/Admin-Dashboard/internal/core/app"
	"github.com/parths19/Admin-Dashboard/internal/format/ascii"
	"github.com/spf13/cobra"
)

func Cache(appInstance *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the response caches",
	}

	cmd.AddCommand(
		CacheClear(appInstance),
		CacheStats(appInstance),
	)

	return cmd
}

func CacheClear(appInstance *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop every cached response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appInstance.ClearCaches()
			fmt.Fprintln(cmd.OutOrStdout(), "Caches cleared")

			return nil
		},
	}
}

func CacheStats(appInstance *app.App) *cobra.Command {
	var warm bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cache counters",
		Long: `Show cache counters of this process. With --warm the first pages of
users and products and the category list are loaded first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if warm {
				if err := appInstance.RequireAuth(); err != nil {
					return fmt.Errorf("--warm needs a session: %w", err)
				}

				err := withSpinner("Warming caches...", func() error {
					return appInstance.Preload(cmd.Context())
				})
				if err != nil {
					return err
				}
			}

			formatted, err := ascii.FormatCacheStats(appInstance.CacheStats())
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatted)

			return nil
		},
	}

	cmd.Flags().BoolVar(&warm, "warm", false, "preload first pages before reporting")

	return cmd
}
