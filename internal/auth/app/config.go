package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/doorman/internal/auth/scheme"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	HasherArgon2id = "argon2id"
	HasherBcrypt   = "bcrypt"

	TokensRandom = "random"
	TokensUUID   = "uuid"
)

// DefaultExcludedPaths are reachable under /api/v1 without a credential.
const DefaultExcludedPaths = "/api/v1/status/,/api/v1/unauthorized/,/api/v1/forbidden/"

type Config struct {
	Driver         string   // Credential store driver (sqlite, postgres) (default: sqlite)
	DatabaseFile   string   // SQLite database file (default: ./doorman.db)
	DatabaseURL    string   // Postgres connection URL, required for the postgres driver
	PepperFile     string   // File holding the password pepper, generated on first use (default: ./pepper)
	AuthType       string   // Request scheme for /api/v1 (none, basic, session) (default: session)
	ExcludedPaths  []string // Paths under /api/v1 that skip the scheme (comma list)
	PasswordHasher string   // Password hash algorithm (argon2id, bcrypt) (default: argon2id)
	TokenFormat    string   // Session and reset token format (random, uuid) (default: random)
	SessionCookie  string   // Cookie carrying the session token (default: session_id)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Driver:         getEnvOrDefault("AUTH_DRIVER", DriverSQLite),
		DatabaseFile:   getEnvOrDefault("AUTH_DATABASE_FILE", "doorman.db"),
		DatabaseURL:    os.Getenv("AUTH_DATABASE_URL"),
		PepperFile:     getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),
		AuthType:       getEnvOrDefault("AUTH_TYPE", scheme.KindSession),
		ExcludedPaths:  SplitList(getEnvOrDefault("AUTH_EXCLUDED_PATHS", DefaultExcludedPaths)),
		PasswordHasher: getEnvOrDefault("AUTH_PASSWORD_HASHER", HasherArgon2id),
		TokenFormat:    getEnvOrDefault("AUTH_TOKEN_FORMAT", TokensRandom),
		SessionCookie:  getEnvOrDefault("AUTH_SESSION_COOKIE", scheme.DefaultSessionCookie),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	switch c.Driver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("AUTH_DATABASE_FILE is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("AUTH_DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown AUTH_DRIVER %q", c.Driver))
	}

	if err := scheme.ValidateKind(c.AuthType); err != nil {
		errs = append(errs, fmt.Errorf("AUTH_TYPE: %w", err))
	}
	if c.PasswordHasher != HasherArgon2id && c.PasswordHasher != HasherBcrypt {
		errs = append(errs, fmt.Errorf("unknown AUTH_PASSWORD_HASHER %q", c.PasswordHasher))
	}
	if c.TokenFormat != TokensRandom && c.TokenFormat != TokensUUID {
		errs = append(errs, fmt.Errorf("unknown AUTH_TOKEN_FORMAT %q", c.TokenFormat))
	}
	if c.SessionCookie == "" {
		errs = append(errs, errors.New("AUTH_SESSION_COOKIE must not be empty"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}

	return errors.Join(errs...)
}

// SplitList splits a comma list, dropping blanks and surrounding spaces.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
