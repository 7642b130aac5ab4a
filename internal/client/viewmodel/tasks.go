package viewmodel

import (
	"context"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
)

type TasksAPI interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, d models.TaskDraft) (models.Task, error)
	ToggleTask(ctx context.Context, id int64) (models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type Tasks struct {
	*List[models.Task]
	api TasksAPI
}

func NewTasks(api TasksAPI, opts ...Option) *Tasks {
	return &Tasks{List: NewList[models.Task](api.ListTasks, opts...), api: api}
}

func (t *Tasks) Create(ctx context.Context, d models.TaskDraft) error {
	if err := models.Validate(&d); err != nil {
		return err
	}
	if _, err := t.api.CreateTask(ctx, d); err != nil {
		return err
	}
	return afterMutation(ctx, "create task", t.Load)
}

// Toggle flips the done flag on the server.
func (t *Tasks) Toggle(ctx context.Context, id int64) error {
	if _, err := t.api.ToggleTask(ctx, id); err != nil {
		return err
	}
	return afterMutation(ctx, "toggle task", t.Load)
}

func (t *Tasks) Remove(ctx context.Context, id int64) error {
	if err := t.api.DeleteTask(ctx, id); err != nil {
		return err
	}
	return afterMutation(ctx, "delete task", t.Load)
}
