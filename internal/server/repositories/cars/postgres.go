// Package cars provides the PostgreSQL-backed car repository.
package cars

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carstorage/internal/common"
	"github.com/dmitrijs2005/carstorage/internal/dbx"
	"github.com/dmitrijs2005/carstorage/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// stringDataRightTruncation is raised when a value exceeds its VARCHAR limit.
const stringDataRightTruncation = "22001"

const selectCars = `
	SELECT c.id, c.color, c.make, c.model, c.year, c.notes, c.date_added, c.proj_pickup_date, c.user_id,
		COALESCE(u.name, ''), COALESCE(u.email, ''), COALESCE(u.phone_number, '')
	FROM cars c
	LEFT JOIN users u ON u.id = c.user_id`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, ownerID int64) ([]*models.Car, error) {
	query := selectCars + `
	WHERE ($1::bigint = 0 OR c.user_id = $1)
	ORDER BY c.id DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select cars: %w", err)
	}
	defer rows.Close()

	result := []*models.Car{}
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, car)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Car, error) {
	car, err := scanCar(r.db.QueryRowContext(ctx, selectCars+`
	WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return car, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCar(s scanner) (*models.Car, error) {
	var c models.Car
	err := s.Scan(&c.ID, &c.Color, &c.Make, &c.Model, &c.Year, &c.Notes, &c.DateAdded, &c.ProjPickupDate,
		&c.UserID, &c.OwnerName, &c.OwnerEmail, &c.OwnerPhone)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, car *models.Car) (int64, error) {
	query :=
		`INSERT INTO cars (color, make, model, year, notes, date_added, proj_pickup_date, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		car.Color, car.Make, car.Model, car.Year, car.Notes, car.DateAdded, car.ProjPickupDate, car.UserID).Scan(&id)
	if err != nil {
		if isTooLong(err) {
			return 0, common.ErrorValidation
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	car.ID = id
	return id, nil
}

// Update writes the editable columns. The owner and date_added never change.
func (r *PostgresRepository) Update(ctx context.Context, car *models.Car) error {
	query :=
		`UPDATE cars
		 SET color = $2, make = $3, model = $4, year = $5, notes = $6, proj_pickup_date = $7
		 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		car.ID, car.Color, car.Make, car.Model, car.Year, car.Notes, car.ProjPickupDate)
	if err != nil {
		if isTooLong(err) {
			return common.ErrorValidation
		}
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

// DeleteByOwner removes every car of ownerID and reports how many went.
func (r *PostgresRepository) DeleteByOwner(ctx context.Context, ownerID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE user_id = $1`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func isTooLong(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == stringDataRightTruncation
}
