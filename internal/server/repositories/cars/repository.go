package cars

import (
	"context"

	"github.com/dmitrijs2005/carstorage/internal/server/models"
)

type Repository interface {
	// List returns cars newest first, joined with their owners. ownerID 0
	// means every owner.
	List(ctx context.Context, ownerID int64) ([]*models.Car, error)
	Get(ctx context.Context, id int64) (*models.Car, error)
	Create(ctx context.Context, car *models.Car) (int64, error)
	Update(ctx context.Context, car *models.Car) error
	Delete(ctx context.Context, id int64) error
	DeleteByOwner(ctx context.Context, ownerID int64) (int64, error)
}
