// Package server wires the car-storage API: it opens PostgreSQL, applies
// migrations, builds the services and runs the REST server until the
// context is cancelled.
package server

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/carstorage/internal/logging"
	"github.com/dmitrijs2005/carstorage/internal/server/config"
	"github.com/dmitrijs2005/carstorage/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/carstorage/internal/server/rest"
	"github.com/dmitrijs2005/carstorage/internal/server/services"
)

// Seams for tests.
var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	newRepositoryManager = repomanager.NewPostgresRepositoryManager
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	userService *services.UserService
	carService  *services.CarService
	taskService *services.TaskService
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		userService: services.NewUserService(db, rm, c),
		carService:  services.NewCarService(db, rm),
		taskService: services.NewTaskService(db, rm),
	}, nil
}

// Users exposes account operations to maintenance commands.
func (app *App) Users() *services.UserService {
	return app.userService
}

func (app *App) Close() error {
	return app.db.Close()
}

// Run serves the API until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "Starting app...")

	s := rest.NewServer(app.config.EndpointAddr, app.config.SecretKey, app.config.ShutdownTimeout,
		app.logger, app.userService, app.carService, app.taskService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "server stopped with error", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
