// Package services contains server-side business logic: account
// management and login, car ownership rules and per-user tasks.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/carstorage/internal/common"
	"github.com/dmitrijs2005/carstorage/internal/dbx"
	"github.com/dmitrijs2005/carstorage/internal/server/auth"
	"github.com/dmitrijs2005/carstorage/internal/server/config"
	"github.com/dmitrijs2005/carstorage/internal/server/models"
	"github.com/dmitrijs2005/carstorage/internal/server/repositories/repomanager"
)

// Registration is a new account. IsAdmin is honoured only when an admin
// registers the account.
type Registration struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	IsAdmin     bool
}

// UserPatch lists the fields to change. Nil fields are left alone.
type UserPatch struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Password    *string
	IsAdmin     *bool
}

// UserService provides account operations:
// - Register / Login
// - List, Update, Delete
// - SetAdmin for bootstrapping the first administrator
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. The email is stored lowercased and must be
// unused.
func (s *UserService) Register(ctx context.Context, caller Caller, r Registration) (*models.User, error) {
	name := strings.TrimSpace(r.Name)
	email := normalizeEmail(r.Email)
	if name == "" || email == "" || r.Password == "" {
		return nil, reject(common.ErrorValidation, "Name, email, and password required")
	}

	repo := s.repomanager.Users(s.db)
	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := auth.HashPassword(r.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PhoneNumber:  strings.TrimSpace(r.PhoneNumber),
		PasswordHash: hash,
		IsAdmin:      r.IsAdmin && caller.IsAdmin,
	}
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the password and returns a signed token carrying the
// user's id and admin flag.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("error loading user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	token, err := auth.GenerateToken(user.ID, user.IsAdmin, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}

// List returns every account ordered by name.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// Update applies p to account id. Members may only update themselves and
// never change the admin flag.
func (s *UserService) Update(ctx context.Context, caller Caller, id int64, p UserPatch) error {
	if !caller.owns(id) {
		return ErrForbidden
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("error loading user: %w", err)
		}

		if p.Name != nil {
			user.Name = strings.TrimSpace(*p.Name)
		}
		if p.Email != nil {
			email := normalizeEmail(*p.Email)
			if email != user.Email {
				if _, err := repo.GetByEmail(ctx, email); err == nil {
					return ErrEmailTaken
				} else if !errors.Is(err, common.ErrorNotFound) {
					return fmt.Errorf("error checking email: %w", err)
				}
			}
			user.Email = email
		}
		if user.Name == "" || user.Email == "" {
			return reject(common.ErrorValidation, "Name and email are required")
		}
		if p.PhoneNumber != nil {
			user.PhoneNumber = strings.TrimSpace(*p.PhoneNumber)
		}
		if p.Password != nil && *p.Password != "" {
			hash, err := auth.HashPassword(*p.Password)
			if err != nil {
				return fmt.Errorf("error hashing password: %w", err)
			}
			user.PasswordHash = hash
		}
		if p.IsAdmin != nil && caller.IsAdmin {
			user.IsAdmin = *p.IsAdmin
		}

		if err := repo.Update(ctx, user); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return ErrEmailTaken
			}
			return fmt.Errorf("error updating user: %w", err)
		}
		return nil
	})
}

// Delete removes account id together with its cars. Admin only.
func (s *UserService) Delete(ctx context.Context, caller Caller, id int64) error {
	if !caller.IsAdmin {
		return ErrForbidden
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		users := s.repomanager.Users(tx)
		if _, err := users.GetByID(ctx, id); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("error loading user: %w", err)
		}
		if _, err := s.repomanager.Cars(tx).DeleteByOwner(ctx, id); err != nil {
			return fmt.Errorf("error deleting cars: %w", err)
		}
		if err := users.Delete(ctx, id); err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}
		return nil
	})
}

// SetAdmin grants or revokes admin rights by email.
func (s *UserService) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	err := s.repomanager.Users(s.db).SetAdmin(ctx, normalizeEmail(email), isAdmin)
	if errors.Is(err, common.ErrorNotFound) {
		return ErrNotFound
	}
	return err
}
