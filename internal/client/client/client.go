package client

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
)

// RequestOptions are the optional parts of a request. Auth attaches the
// current session token.
type RequestOptions struct {
	Query url.Values
	Body  any
	Auth  bool
}

// TokenSource yields the token to send. An empty string means anonymous.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

type Client interface {
	Do(ctx context.Context, method, path string, opts RequestOptions, out any) error

	Login(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, reg models.Registration) error

	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, d models.UserDraft) error
	DeleteUser(ctx context.Context, id int64) error

	ListCars(ctx context.Context, query url.Values) ([]models.Car, error)
	CreateCar(ctx context.Context, d models.CarDraft) (int64, error)
	UpdateCar(ctx context.Context, id int64, d models.CarDraft) error
	DeleteCar(ctx context.Context, id int64) error

	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, d models.TaskDraft) (models.Task, error)
	ToggleTask(ctx context.Context, id int64) (models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
