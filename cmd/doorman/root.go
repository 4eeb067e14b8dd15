package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aussiebroadwan/doorman/internal/auth/app"
)

// NewRootCmd creates the root command. Flags default to the values loaded
// from the environment, so a flag only matters when it is given.
func NewRootCmd() *cobra.Command {
	cfg := app.LoadConfig()

	cmd := &cobra.Command{
		Use:   "doorman",
		Short: "Doorman - user accounts, sessions and password reset",
		Long: `Doorman registers users, logs them in with server-side sessions,
and gates /api/v1 behind a configurable scheme (none, basic or session).`,
		SilenceUsage: true,
	}

	addConfigFlags(cmd.PersistentFlags(), &cfg)

	cmd.AddCommand(NewServeCmd(&cfg))
	cmd.AddCommand(NewMigrateCmd(&cfg))

	return cmd
}

func addConfigFlags(fs *pflag.FlagSet, cfg *app.Config) {
	fs.StringVar(&cfg.Driver, "driver", cfg.Driver, "credential store driver (sqlite, postgres)")
	fs.StringVar(&cfg.DatabaseFile, "database-file", cfg.DatabaseFile, "sqlite database file")
	fs.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "postgres connection URL")
	fs.StringVar(&cfg.PepperFile, "pepper-file", cfg.PepperFile, "file holding the password pepper")
	fs.StringVar(&cfg.AuthType, "auth-type", cfg.AuthType, "scheme gating /api/v1 (none, basic, session)")
	fs.StringSliceVar(&cfg.ExcludedPaths, "excluded-paths", cfg.ExcludedPaths, "paths under /api/v1 that skip the scheme")
	fs.StringVar(&cfg.PasswordHasher, "password-hasher", cfg.PasswordHasher, "password hash algorithm (argon2id, bcrypt)")
	fs.StringVar(&cfg.TokenFormat, "token-format", cfg.TokenFormat, "session and reset token format (random, uuid)")
	fs.StringVar(&cfg.SessionCookie, "session-cookie", cfg.SessionCookie, "cookie carrying the session token")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (json, text)")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	fs.DurationVar(&cfg.ShutdownGracePeriod, "shutdown-grace-period", cfg.ShutdownGracePeriod, "graceful shutdown timeout")
}
