// Package rest exposes the services over the JSON API the client speaks.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/carstorage/internal/common"
	"github.com/dmitrijs2005/carstorage/internal/logging"
	"github.com/dmitrijs2005/carstorage/internal/server/models"
	"github.com/dmitrijs2005/carstorage/internal/server/services"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type UserService interface {
	Register(ctx context.Context, caller services.Caller, r services.Registration) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, caller services.Caller, id int64, p services.UserPatch) error
	Delete(ctx context.Context, caller services.Caller, id int64) error
}

type CarService interface {
	List(ctx context.Context, caller services.Caller, scope string) ([]*models.Car, error)
	Create(ctx context.Context, caller services.Caller, in services.CarInput) (int64, error)
	Update(ctx context.Context, caller services.Caller, id int64, p services.CarPatch) error
	Delete(ctx context.Context, caller services.Caller, id int64) error
}

type TaskService interface {
	List(ctx context.Context, caller services.Caller) ([]*models.Task, error)
	Create(ctx context.Context, caller services.Caller, title string) (*models.Task, error)
	Toggle(ctx context.Context, caller services.Caller, id int64) (*models.Task, error)
	Delete(ctx context.Context, caller services.Caller, id int64) error
}

type Server struct {
	address         string
	shutdownTimeout time.Duration
	jwtSecret       []byte
	logger          logging.Logger

	users UserService
	cars  CarService
	tasks TaskService

	echo *echo.Echo
}

func NewServer(addr string, secretKey string, shutdownTimeout time.Duration, l logging.Logger,
	us UserService, cs CarService, ts TaskService) *Server {
	s := &Server{
		address:         addr,
		shutdownTimeout: shutdownTimeout,
		jwtSecret:       []byte(secretKey),
		logger:          l.With("module", "rest_server"),
		users:           us,
		cars:            cs,
		tasks:           ts,
	}
	s.echo = s.newEcho()
	return s
}

// Handler returns the routed echo instance.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validator: validator.New()}
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: common.RequestIDHeaderName,
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(s.requestLogger())

	api := e.Group("/api")
	api.POST("/login", s.login)
	api.POST("/register", s.register, s.optionalAuth())

	secured := api.Group("", s.requireAuth())
	secured.GET("/users", s.listUsers)
	secured.PUT("/update_user/:id", s.updateUser)
	secured.DELETE("/users/:id", s.deleteUser)

	secured.GET("/cars", s.listCars)
	secured.POST("/cars", s.createCar)
	secured.PUT("/cars/:id", s.updateCar)
	secured.DELETE("/cars/:id", s.deleteCar)

	secured.GET("/tasks", s.listTasks)
	secured.POST("/tasks", s.createTask)
	secured.PUT("/tasks/:id", s.toggleTask)
	secured.DELETE("/tasks/:id", s.deleteTask)

	return e
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting REST server", "address", s.address)
		if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping REST server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}

type requestValidator struct {
	validator *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	return v.validator.Struct(i)
}
