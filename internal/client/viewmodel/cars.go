package viewmodel

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
)

// CarsAPI is the part of the resource client the car list needs.
type CarsAPI interface {
	ListCars(ctx context.Context, query url.Values) ([]models.Car, error)
	CreateCar(ctx context.Context, d models.CarDraft) (int64, error)
	UpdateCar(ctx context.Context, id int64, d models.CarDraft) error
	DeleteCar(ctx context.Context, id int64) error
}

// Cars is the car list. query supplies the scope parameters for each load
// and may be nil.
type Cars struct {
	*List[models.Car]
	api  CarsAPI
	Edit *EditBuffer[models.CarDraft]
}

func NewCars(api CarsAPI, query func() url.Values, opts ...Option) *Cars {
	c := &Cars{api: api}
	c.List = NewList[models.Car](func(ctx context.Context) ([]models.Car, error) {
		var q url.Values
		if query != nil {
			q = query()
		}
		return api.ListCars(ctx, q)
	}, opts...)
	c.Edit = NewEditBuffer[models.CarDraft](c)
	return c
}

// Create rejects a draft with an empty make or model before any request.
func (c *Cars) Create(ctx context.Context, d models.CarDraft) error {
	if err := models.Validate(&d); err != nil {
		return err
	}
	if _, err := c.api.CreateCar(ctx, d); err != nil {
		return err
	}
	return afterMutation(ctx, "create car", c.Load)
}

func (c *Cars) Update(ctx context.Context, id int64, d models.CarDraft) error {
	if err := models.Validate(&d); err != nil {
		return err
	}
	if err := c.api.UpdateCar(ctx, id, d); err != nil {
		return err
	}
	return afterMutation(ctx, "update car", c.Load)
}

func (c *Cars) Remove(ctx context.Context, id int64) error {
	if err := c.api.DeleteCar(ctx, id); err != nil {
		return err
	}
	return afterMutation(ctx, "delete car", c.Load)
}
