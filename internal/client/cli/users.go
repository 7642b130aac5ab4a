package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
	"github.com/dmitrijs2005/carstorage/internal/common"
)

func (a *App) Users(ctx context.Context) error {
	if !a.isAdmin() {
		return errForbidden
	}
	if err := a.users.Load(ctx); err != nil {
		return err
	}
	renderUsers(a.out, a.users.Derived())
	return nil
}

func (a *App) ensureUsers(ctx context.Context) error {
	if a.users.Len() > 0 {
		return nil
	}
	if err := a.users.Load(ctx); err != nil {
		return err
	}
	a.profile.UsersLoaded(a.session.Current(), a.users.Items())
	return nil
}

func (a *App) selectedUser() (models.User, error) {
	id := a.profile.Selected()
	u, ok := a.users.Find(id)
	if !ok {
		return models.User{}, fmt.Errorf("user %d: %w", id, common.ErrorNotFound)
	}
	return u, nil
}

// Profile shows the selected account. Admins may pass a user id to select
// another account.
func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if !a.isAdmin() {
			return errForbidden
		}
		id, err := parseID(args, "profile <user id>")
		if err != nil {
			return err
		}
		a.profile.Select(id)
	}
	if err := a.ensureUsers(ctx); err != nil {
		return err
	}
	u, err := a.selectedUser()
	if err != nil {
		return err
	}
	renderProfile(a.out, u)
	return nil
}

func (a *App) EditProfile(ctx context.Context) error {
	if err := a.ensureUsers(ctx); err != nil {
		return err
	}
	u, err := a.selectedUser()
	if err != nil {
		return err
	}

	d := u.Draft()
	if d.Name, err = getWithDefault(a.reader, "Name", d.Name, a.out); err != nil {
		return err
	}
	if d.Email, err = getWithDefault(a.reader, "Email", d.Email, a.out); err != nil {
		return err
	}
	if d.PhoneNumber, err = getWithDefault(a.reader, "Phone number", d.PhoneNumber, a.out); err != nil {
		return err
	}
	if a.decision().CanGrantAdmin {
		cur := "n"
		if d.IsAdmin {
			cur = "y"
		}
		v, err := getWithDefault(a.reader, "Admin (y/n)", cur, a.out)
		if err != nil {
			return err
		}
		d.IsAdmin = strings.EqualFold(v, "y") || strings.EqualFold(v, "yes")
	}

	fmt.Fprintln(a.out, "New password (leave empty to keep the current one)")
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	d.Password = string(password)

	if err := a.users.Update(ctx, u.ID, d); err != nil {
		return err
	}
	a.notify("User updated")
	return nil
}

func (a *App) AddUser(ctx context.Context) error {
	if !a.decision().CanCreateUser {
		return errForbidden
	}

	var reg models.Registration
	var err error
	if reg.Name, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if reg.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if reg.PhoneNumber, err = getSimpleText(a.reader, "Phone number (optional)", a.out); err != nil {
		return err
	}
	admin, err := getSimpleText(a.reader, "Admin (y/N)", a.out)
	if err != nil {
		return err
	}
	reg.IsAdmin = strings.EqualFold(admin, "y") || strings.EqualFold(admin, "yes")

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	reg.Password = string(password)

	if err := a.users.Create(ctx, reg); err != nil {
		return err
	}
	a.notify("User added")
	return nil
}

// DeleteUser removes the selected account along with its cars.
func (a *App) DeleteUser(ctx context.Context) error {
	if !a.decision().CanDeleteUser {
		return errForbidden
	}
	if err := a.ensureUsers(ctx); err != nil {
		return err
	}
	u, err := a.selectedUser()
	if err != nil {
		return err
	}
	if !confirm(a.reader, "Are you sure you want to delete "+u.Name+" ("+u.Email+")?", a.out) {
		a.notify("Cancelled")
		return nil
	}
	if err := a.users.Remove(ctx, u.ID); err != nil {
		return err
	}
	a.notify("User #%d deleted", u.ID)

	sess := a.session.Current()
	a.profile.Reset(sess)
	a.profile.UsersLoaded(sess, a.users.Items())
	if a.scope.Scope() == strconv.FormatInt(u.ID, 10) {
		_ = a.scope.Select(common.ScopeAll)
	}
	return a.cars.Load(ctx)
}
