package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/sitewatch/sitewatch/internal/platform/http"
	"github.com/sitewatch/sitewatch/internal/platform/mail"
	"github.com/sitewatch/sitewatch/internal/platform/service"
	"github.com/sitewatch/sitewatch/internal/platform/store"
	"github.com/sitewatch/sitewatch/internal/platform/store/drivers/sqlite"
	"github.com/sitewatch/sitewatch/internal/platform/telemetry"
	"github.com/sitewatch/sitewatch/pkg/cryptox"
	"github.com/sitewatch/sitewatch/pkg/jwtx"
	"github.com/sitewatch/sitewatch/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the platform service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	keypair *jwtx.Keypair
	mailer  *mail.Sender

	// Services
	tenantService       *service.TenantService
	signupService       *service.SignupService
	authService         *service.AuthService
	inviteService       *service.InviteService
	observationService  *service.ObservationService
	locationService     *service.LocationService
	reportService       *service.ReportService
	demoService         *service.DemoService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "sitewatch",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	// Session keys are ephemeral: every restart invalidates outstanding
	// tokens, which at a 12h TTL is an acceptable trade for not managing
	// key material.
	keypair, err := jwtx.NewEphemeralKeypair("sitewatch-session", cfg.Issuer)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}
	app.keypair = keypair

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("sitewatch starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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
	app.logger.Info("shutting down sitewatch...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("sitewatch stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	telemetry.StartDBStatsCollector(db.DB())

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.mailer = mail.NewSender(mail.Config{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.SMTPFrom,
		UseTLS:   app.cfg.SMTPUseTLS,
		BaseURL:  app.cfg.BaseURL,
	})
	if app.mailer.Enabled() {
		app.logger.Info("invite mail enabled", "smtp_host", app.cfg.SMTPHost)
	} else {
		app.logger.Info("invite mail disabled, no SMTP host configured")
	}

	app.tenantService = &service.TenantService{Store: app.db}
	app.signupService = &service.SignupService{Store: app.db}
	app.authService = &service.AuthService{
		Store:      app.db,
		Keypair:    app.keypair,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.inviteService = &service.InviteService{
		Store: app.db,
		Mail:  app.mailer,
	}
	app.observationService = &service.ObservationService{Store: app.db}
	app.locationService = &service.LocationService{Store: app.db}
	app.reportService = &service.ReportService{Store: app.db}
	app.demoService = &service.DemoService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keypair,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.TenantService = app.tenantService
	router.SignupService = app.signupService
	router.AuthService = app.authService
	router.InviteService = app.inviteService
	router.ObservationService = app.observationService
	router.LocationService = app.locationService
	router.ReportService = app.reportService
	router.DemoService = app.demoService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
