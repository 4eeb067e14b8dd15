package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/doorman/internal/auth/http"
	"github.com/aussiebroadwan/doorman/internal/auth/metrics"
	"github.com/aussiebroadwan/doorman/internal/auth/scheme"
	"github.com/aussiebroadwan/doorman/internal/auth/service"
	"github.com/aussiebroadwan/doorman/internal/auth/store"
	"github.com/aussiebroadwan/doorman/internal/auth/store/drivers/postgres"
	"github.com/aussiebroadwan/doorman/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/doorman/pkg/cryptox"
	"github.com/aussiebroadwan/doorman/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the auth service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db      store.Store
	metrics *metrics.Metrics

	authService  *service.AuthService
	resetService *service.ResetService
	scheme       scheme.Scheme

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "doorman",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates a new Application instance with all dependencies initialized
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.New(),
	}

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initScheme(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()
	return app, nil
}

// Handler exposes the routed handler, mostly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("doorman starting",
		"port", app.cfg.Port,
		"driver", app.cfg.Driver,
		"auth_type", app.scheme.Name(),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down doorman...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("doorman stopped")
	return nil
}

// OpenStore connects to the configured credential store without migrating it.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.Driver {
	case DriverPostgres:
		return postgres.NewStore(ctx, cfg.DatabaseURL)
	case DriverSQLite:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile)
		return sqlite.NewStore(dsn)
	default:
		return nil, fmt.Errorf("unknown driver %q", cfg.Driver)
	}
}

// Migrate applies the embedded migrations for the configured driver.
func Migrate(ctx context.Context, cfg Config) error {
	st, err := OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = st.Close() }()

	if err := st.ApplyMigrations(); err != nil {
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return nil
}

// initDatabase opens the credential store and applies migrations
func (app *Application) initDatabase(ctx context.Context) error {
	db, err := OpenStore(ctx, app.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.Driver)
	return nil
}

// initServices builds the hasher and token generator and the services over them
func (app *Application) initServices() error {
	pepper, err := cryptox.LoadPepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}

	var hasher service.PasswordHasher
	switch app.cfg.PasswordHasher {
	case HasherBcrypt:
		hasher = cryptox.BcryptHasher{Pepper: pepper}
	default:
		hasher = cryptox.Argon2idHasher{Pepper: pepper}
	}

	var tokens service.TokenGenerator
	switch app.cfg.TokenFormat {
	case TokensUUID:
		tokens = cryptox.UUIDTokens{}
	default:
		tokens = cryptox.RandomTokens{Size: cryptox.TokenSize256}
	}

	app.authService = &service.AuthService{
		Store:   app.db,
		Hasher:  hasher,
		Tokens:  tokens,
		Metrics: app.metrics,
	}
	app.resetService = &service.ResetService{
		Store:   app.db,
		Hasher:  hasher,
		Tokens:  tokens,
		Metrics: app.metrics,
	}
	return nil
}

// initScheme selects the request scheme gating /api/v1
func (app *Application) initScheme() error {
	paths, err := scheme.CompilePaths(app.cfg.ExcludedPaths)
	if err != nil {
		return err
	}

	switch app.cfg.AuthType {
	case scheme.KindBasic:
		app.scheme = &scheme.Basic{Paths: paths, Credentials: app.authService}
	case scheme.KindSession:
		app.scheme = &scheme.Session{
			Paths:      paths,
			CookieName: app.cfg.SessionCookie,
			Sessions:   app.authService,
		}
	default:
		app.scheme = scheme.NoAuth{}
	}

	app.logger.Info("auth scheme selected",
		"auth_type", app.scheme.Name(),
		"excluded_paths", paths.Patterns(),
	)
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.scheme, BuildVersion, app.db, app.metrics, app.logger)
	router.AuthService = app.authService
	router.ResetService = app.resetService
	router.SessionCookie = app.cfg.SessionCookie
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
