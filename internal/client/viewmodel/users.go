package viewmodel

import (
	"context"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
)

type UsersAPI interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	Register(ctx context.Context, reg models.Registration) error
	UpdateUser(ctx context.Context, id int64, d models.UserDraft) error
	DeleteUser(ctx context.Context, id int64) error
}

type Users struct {
	*List[models.User]
	api UsersAPI
}

func NewUsers(api UsersAPI, opts ...Option) *Users {
	return &Users{List: NewList[models.User](api.ListUsers, opts...), api: api}
}

// Create adds an account through the registration endpoint.
func (u *Users) Create(ctx context.Context, reg models.Registration) error {
	if err := models.Validate(&reg); err != nil {
		return err
	}
	if err := u.api.Register(ctx, reg); err != nil {
		return err
	}
	return afterMutation(ctx, "create user", u.Load)
}

func (u *Users) Update(ctx context.Context, id int64, d models.UserDraft) error {
	if err := models.Validate(&d); err != nil {
		return err
	}
	if err := u.api.UpdateUser(ctx, id, d); err != nil {
		return err
	}
	return afterMutation(ctx, "update user", u.Load)
}

func (u *Users) Remove(ctx context.Context, id int64) error {
	if err := u.api.DeleteUser(ctx, id); err != nil {
		return err
	}
	return afterMutation(ctx, "delete user", u.Load)
}
