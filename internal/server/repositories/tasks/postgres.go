// Package tasks provides the PostgreSQL-backed task repository.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carstorage/internal/common"
	"github.com/dmitrijs2005/carstorage/internal/dbx"
	"github.com/dmitrijs2005/carstorage/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]*models.Task, error) {
	query := `SELECT id, user_id, title, done, created_at FROM tasks
		WHERE user_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	defer rows.Close()

	result := []*models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Done, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query := `INSERT INTO tasks (user_id, title)
		VALUES ($1, $2)
		RETURNING id, done, created_at`

	err := r.db.QueryRowContext(ctx, query, task.UserID, task.Title).Scan(&task.ID, &task.Done, &task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

// Toggle flips the done flag and returns the updated task.
func (r *PostgresRepository) Toggle(ctx context.Context, id, userID int64) (*models.Task, error) {
	query := `UPDATE tasks SET done = NOT done
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, done, created_at`

	var t models.Task
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&t.ID, &t.UserID, &t.Title, &t.Done, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &t, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
