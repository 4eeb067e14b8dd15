package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/doorman/internal/auth/app"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd(cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Apply all pending migrations for the configured driver without starting the server.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return oops.Code("CONFIG_INVALID").Wrap(err)
			}

			cmd.Printf("Running %s migrations...\n", cfg.Driver)
			if err := app.Migrate(cmd.Context(), *cfg); err != nil {
				return oops.Code("MIGRATION_FAILED").With("operation", "run migrations").Wrap(err)
			}

			cmd.Println("Migrations completed successfully")
			return nil
		},
	}
}
