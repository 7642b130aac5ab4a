package tasks

import (
	"context"

	"github.com/dmitrijs2005/carstorage/internal/server/models"
)

// Repository stores per-user tasks. Every call is scoped to userID; a task
// owned by someone else reads as missing.
type Repository interface {
	List(ctx context.Context, userID int64) ([]*models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Toggle(ctx context.Context, id, userID int64) (*models.Task, error)
	Delete(ctx context.Context, id, userID int64) error
}
