package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/doorman/internal/auth/app"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd(cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Apply pending migrations, then serve the account, session and
password reset endpoints until SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := app.NewLogger(*cfg)

			application, err := app.New(cmd.Context(), *cfg, logger)
			if err != nil {
				logger.Error("failed to initialize application", "error", err)
				return oops.Code("STARTUP_FAILED").With("operation", "initialize application").Wrap(err)
			}

			if err := application.Run(); err != nil {
				logger.Error("application error", "error", err)
				return oops.Code("SERVER_FAILED").Wrap(err)
			}
			return nil
		},
	}
}
