package cli

import (
	"context"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
	"github.com/dmitrijs2005/carstorage/internal/common"
)

// Register creates an account from the login screen. It does not log in.
func (a *App) Register(ctx context.Context) error {
	var reg models.Registration
	var err error

	if reg.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if reg.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if reg.PhoneNumber, err = getSimpleText(a.reader, "Enter phone number (optional)", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	reg.Password = string(password)

	if err := models.Validate(&reg); err != nil {
		return err
	}
	if err := a.api.Register(ctx, reg); err != nil {
		return err
	}
	a.notify("Registered %s. You can log in now.", reg.Email)
	return nil
}

// Login authenticates and loads the views the new session starts with.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.session.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		return err
	}
	if sess.IsAdmin {
		a.notify("Logged in as user #%d (admin)", sess.SubjectID)
	} else {
		a.notify("Logged in as user #%d", sess.SubjectID)
	}
	return a.refresh(ctx)
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.notify("Logged out")
	return nil
}

// Reload re-fetches users and cars for the current session and scope.
func (a *App) Reload(ctx context.Context) error {
	if err := a.refresh(ctx); err != nil {
		return err
	}
	return a.ListCars(ctx)
}
