package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/carstorage/internal/common"
	"github.com/dmitrijs2005/carstorage/internal/server/models"
	"github.com/dmitrijs2005/carstorage/internal/server/repositories/repomanager"
)

// TaskService manages the caller's own to-do items. Admin rights do not
// extend to other users' tasks.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

func (s *TaskService) List(ctx context.Context, caller Caller) ([]*models.Task, error) {
	tasks, err := s.repomanager.Tasks(s.db).List(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, caller Caller, title string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, reject(common.ErrorValidation, "Title is required")
	}
	t, err := s.repomanager.Tasks(s.db).Create(ctx, &models.Task{UserID: caller.UserID, Title: title})
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return t, nil
}

// Toggle flips the done flag of one of the caller's tasks.
func (s *TaskService) Toggle(ctx context.Context, caller Caller, id int64) (*models.Task, error) {
	t, err := s.repomanager.Tasks(s.db).Toggle(ctx, id, caller.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error toggling task: %w", err)
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, caller Caller, id int64) error {
	if err := s.repomanager.Tasks(s.db).Delete(ctx, id, caller.UserID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error deleting task: %w", err)
	}
	return nil
}
