package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/carstorage/internal/common"
	"github.com/dmitrijs2005/carstorage/internal/server/models"
	"github.com/dmitrijs2005/carstorage/internal/server/repositories/repomanager"
)

const dateLayout = "2006-01-02"

// CarInput is a new car. UserID assigns the owner and is honoured only for
// admins; DateAdded defaults to today.
type CarInput struct {
	Color          string
	Make           string
	Model          string
	Year           string
	Notes          string
	ProjPickupDate string
	DateAdded      *string
	UserID         int64
}

// CarPatch lists the fields to change. Nil fields are left alone.
type CarPatch struct {
	Color          *string
	Make           *string
	Model          *string
	Year           *string
	Notes          *string
	ProjPickupDate *string
}

type CarService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewCarService(db *sql.DB, m repomanager.RepositoryManager) *CarService {
	return &CarService{db: db, repomanager: m, now: time.Now}
}

var (
	errMakeModel = reject(common.ErrorValidation, "Make and model are required")
	errTooLong   = reject(common.ErrorValidation, "Value too long")
)

// List returns the cars the caller may see, newest first. Members always get
// their own; admins get every owner's unless scope names a user id.
func (s *CarService) List(ctx context.Context, caller Caller, scope string) ([]*models.Car, error) {
	ownerID := caller.UserID
	if caller.IsAdmin {
		ownerID = 0
		if scope != "" && scope != common.ScopeAll {
			id, err := strconv.ParseInt(scope, 10, 64)
			if err != nil || id <= 0 {
				return nil, reject(common.ErrorValidation, "Invalid user_id")
			}
			ownerID = id
		}
	}

	cars, err := s.repomanager.Cars(s.db).List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing cars: %w", err)
	}
	return cars, nil
}

func (s *CarService) Create(ctx context.Context, caller Caller, in CarInput) (int64, error) {
	car := &models.Car{
		Color:          strings.TrimSpace(in.Color),
		Make:           strings.TrimSpace(in.Make),
		Model:          strings.TrimSpace(in.Model),
		Year:           strings.TrimSpace(in.Year),
		Notes:          strings.TrimSpace(in.Notes),
		ProjPickupDate: strings.TrimSpace(in.ProjPickupDate),
		DateAdded:      s.now().Format(dateLayout),
		UserID:         caller.UserID,
	}
	if car.Make == "" || car.Model == "" {
		return 0, errMakeModel
	}
	if in.DateAdded != nil {
		car.DateAdded = strings.TrimSpace(*in.DateAdded)
	}

	if caller.IsAdmin && in.UserID != 0 && in.UserID != caller.UserID {
		if _, err := s.repomanager.Users(s.db).GetByID(ctx, in.UserID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return 0, reject(common.ErrorValidation, "Unknown user")
			}
			return 0, fmt.Errorf("error loading owner: %w", err)
		}
		car.UserID = in.UserID
	}

	id, err := s.repomanager.Cars(s.db).Create(ctx, car)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return 0, errTooLong
		}
		return 0, fmt.Errorf("error creating car: %w", err)
	}
	return id, nil
}

// load fetches car id and checks the caller may touch it.
func (s *CarService) load(ctx context.Context, caller Caller, id int64) (*models.Car, error) {
	car, err := s.repomanager.Cars(s.db).Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error loading car: %w", err)
	}
	if !caller.owns(car.UserID) {
		return nil, ErrForbidden
	}
	return car, nil
}

func (s *CarService) Update(ctx context.Context, caller Caller, id int64, p CarPatch) error {
	car, err := s.load(ctx, caller, id)
	if err != nil {
		return err
	}

	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&car.Color, p.Color)
	set(&car.Make, p.Make)
	set(&car.Model, p.Model)
	set(&car.Year, p.Year)
	set(&car.Notes, p.Notes)
	set(&car.ProjPickupDate, p.ProjPickupDate)
	if car.Make == "" || car.Model == "" {
		return errMakeModel
	}

	if err := s.repomanager.Cars(s.db).Update(ctx, car); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrNotFound
		}
		if errors.Is(err, common.ErrorValidation) {
			return errTooLong
		}
		return fmt.Errorf("error updating car: %w", err)
	}
	return nil
}

func (s *CarService) Delete(ctx context.Context, caller Caller, id int64) error {
	if _, err := s.load(ctx, caller, id); err != nil {
		return err
	}
	if err := s.repomanager.Cars(s.db).Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error deleting car: %w", err)
	}
	return nil
}
