package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/gobidev/ems-api/internal/config"
	"github.com/gobidev/ems-api/internal/platform/postgres"
	"github.com/gobidev/ems-api/internal/service"
	"github.com/gobidev/ems-api/internal/service/auth"
	"github.com/gobidev/ems-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	employeeStore store.EmployeeStore
	roleStore     store.RoleStore
	skillStore    store.SkillStore
	accountStore  store.AccountStore

	// Service interfaces
	jwtService      auth.JWTService
	employeeService service.EmployeeService
	roleService     service.RoleService
	skillService    service.SkillService
	accountService  service.AccountService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize stores
	app.employeeStore = postgres.NewPostgresEmployeeStore(db, logger)
	app.roleStore = postgres.NewPostgresRoleStore(db, logger)
	app.skillStore = postgres.NewPostgresSkillStore(db, logger)
	app.accountStore = postgres.NewPostgresAccountStore(db, logger)

	// Initialize services. The role, skill, and account services reach the
	// owning employee only through the employee service.
	app.employeeService = service.NewEmployeeService(
		app.employeeStore,
		auth.NewBcryptHasher(),
		auth.NewBcryptVerifier(),
		app.jwtService,
		logger,
	)
	app.roleService = service.NewRoleService(app.roleStore, app.employeeService, logger)
	app.skillService = service.NewSkillService(app.skillStore, app.employeeService, logger)
	app.accountService = service.NewAccountService(app.accountStore, app.employeeService, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
