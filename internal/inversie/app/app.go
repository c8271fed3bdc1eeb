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

	httpapi "github.com/aussiebroadwan/inversie/internal/inversie/http"
	"github.com/aussiebroadwan/inversie/internal/inversie/notify"
	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/aussiebroadwan/inversie/internal/inversie/store"
	"github.com/aussiebroadwan/inversie/internal/inversie/store/drivers/sqlite"
	"github.com/aussiebroadwan/inversie/pkg/cryptox"
	"github.com/aussiebroadwan/inversie/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application holds the Inversie API and everything it depends on.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db        store.Store
	publisher *notify.RabbitPublisher // nil when AMQP_URL is unset

	sessionService      *service.SessionService
	potjeService        *service.PotjeService
	decisionService     *service.DecisionService
	moneyRequestService *service.MoneyRequestService
	transactionService  *service.TransactionService
	savingsGoalService  *service.SavingsGoalService
	notificationService *service.NotificationService
	guardianService     *service.GuardianService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with its database migrated and every service
// wired. Nothing listens until Run is called.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "inversie-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)
	if _, err := cryptox.LoadPepper(); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initPublisher(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("inversie api starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
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

// Shutdown drains in-flight requests, stops background work and closes the
// database and broker connection.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down inversie api...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", slogx.Err(err))
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", slogx.Err(err))
		}
	}

	app.housekeepingService.Stop()

	if app.publisher != nil {
		if err := app.publisher.Close(); err != nil {
			app.logger.Error("error closing broker connection", slogx.Err(err))
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", slogx.Err(err))
		return err
	}

	app.logger.Info("inversie api stopped")
	return nil
}

// Handler exposes the HTTP handler, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}
	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)

	if app.cfg.SeedDemoData {
		if _, err := service.SeedDemoData(context.Background(), db, time.Now, app.logger); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}
	return nil
}

func (app *Application) initPublisher() error {
	if app.cfg.AMQPURL == "" {
		app.logger.Info("notification relay disabled")
		return nil
	}

	pub, err := notify.NewRabbitPublisher(app.cfg.AMQPURL, app.cfg.AMQPQueue)
	if err != nil {
		return fmt.Errorf("failed to connect to broker: %w", err)
	}
	app.publisher = pub
	app.logger.Info("notification relay enabled", "queue", app.cfg.AMQPQueue)
	return nil
}

func (app *Application) initServices() {
	app.sessionService = &service.SessionService{
		Store:             app.db,
		TTL:               app.cfg.SessionTTL,
		Clock:             time.Now,
		RevokeOnPINChange: app.cfg.RevokeSessionsOnPINChange,
	}
	app.potjeService = &service.PotjeService{Store: app.db}
	app.decisionService = &service.DecisionService{Store: app.db, Clock: time.Now}
	app.moneyRequestService = &service.MoneyRequestService{Store: app.db, Clock: time.Now}
	app.transactionService = &service.TransactionService{Store: app.db}
	app.savingsGoalService = &service.SavingsGoalService{Store: app.db, Clock: time.Now}
	app.notificationService = &service.NotificationService{Store: app.db}
	app.guardianService = &service.GuardianService{
		Store:             app.db,
		Clock:             time.Now,
		StrictTransitions: app.cfg.StrictTransitions,
	}

	// A nil *RabbitPublisher inside the interface would not compare equal to
	// nil, so only hand it over when connected.
	var pub service.Publisher
	if app.publisher != nil {
		pub = app.publisher
	}
	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		pub,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger, app.cfg.TrustProxy)

	router.SessionService = app.sessionService
	router.PotjeService = app.potjeService
	router.DecisionService = app.decisionService
	router.MoneyRequestService = app.moneyRequestService
	router.TransactionService = app.transactionService
	router.SavingsGoalService = app.savingsGoalService
	router.NotificationService = app.notificationService
	router.GuardianService = app.guardianService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
