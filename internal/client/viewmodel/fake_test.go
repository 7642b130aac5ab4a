package viewmodel

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
)

// fakeCarsAPI is a tiny in-memory server. Mutations go through the same
// rules the real one applies, so tests can tell a reload from a local patch.
type fakeCarsAPI struct {
	mu        sync.Mutex
	cars      []models.Car
	nextID    int64
	ListCalls int
	Mutations int
	LastQuery url.Values
	LastDraft models.CarDraft
	Err       error
	ListErr   error
}

func (f *fakeCarsAPI) ListCars(_ context.Context, q url.Values) ([]models.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	f.LastQuery = q
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]models.Car(nil), f.cars...), nil
}

func (f *fakeCarsAPI) CreateCar(_ context.Context, d models.CarDraft) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Mutations++
	f.LastDraft = d
	if f.Err != nil {
		return 0, f.Err
	}
	f.nextID++
	f.cars = append([]models.Car{{ID: f.nextID, Make: d.Make, Model: d.Model, Year: d.Year, OwnerID: d.OwnerID, DateAdded: "2025-01-01"}}, f.cars...)
	return f.nextID, nil
}

func (f *fakeCarsAPI) UpdateCar(_ context.Context, id int64, d models.CarDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Mutations++
	f.LastDraft = d
	if f.Err != nil {
		return f.Err
	}
	for i := range f.cars {
		if f.cars[i].ID == id {
			f.cars[i].Make = d.Make
			f.cars[i].Model = d.Model
			f.cars[i].Year = d.Year
			// the server stamps notes; a local patch would not know this
			f.cars[i].Notes = "updated by server"
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeCarsAPI) DeleteCar(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Mutations++
	if f.Err != nil {
		return f.Err
	}
	for i := range f.cars {
		if f.cars[i].ID == id {
			f.cars = append(f.cars[:i], f.cars[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type fakeUsersAPI struct {
	users     []models.User
	ListCalls int
	LastReg   models.Registration
	LastDraft models.UserDraft
	Deleted   []int64
	Err       error
}

func (f *fakeUsersAPI) ListUsers(context.Context) ([]models.User, error) {
	f.ListCalls++
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeUsersAPI) Register(_ context.Context, r models.Registration) error {
	f.LastReg = r
	if f.Err != nil {
		return f.Err
	}
	f.users = append(f.users, models.User{ID: int64(len(f.users) + 1), Name: r.Name, Email: r.Email})
	return nil
}

func (f *fakeUsersAPI) UpdateUser(_ context.Context, id int64, d models.UserDraft) error {
	f.LastDraft = d
	if f.Err != nil {
		return f.Err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Name = d.Name
		}
	}
	return nil
}

func (f *fakeUsersAPI) DeleteUser(_ context.Context, id int64) error {
	if f.Err != nil {
		return f.Err
	}
	f.Deleted = append(f.Deleted, id)
	return nil
}

type fakeTasksAPI struct {
	tasks     []models.Task
	ListCalls int
	Err       error
}

func (f *fakeTasksAPI) ListTasks(context.Context) ([]models.Task, error) {
	f.ListCalls++
	return append([]models.Task(nil), f.tasks...), nil
}

func (f *fakeTasksAPI) CreateTask(_ context.Context, d models.TaskDraft) (models.Task, error) {
	if f.Err != nil {
		return models.Task{}, f.Err
	}
	t := models.Task{ID: int64(len(f.tasks) + 1), Title: d.Title}
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeTasksAPI) ToggleTask(_ context.Context, id int64) (models.Task, error) {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Done = !f.tasks[i].Done
			return f.tasks[i], nil
		}
	}
	return models.Task{}, errors.New("not found")
}

func (f *fakeTasksAPI) DeleteTask(_ context.Context, id int64) error {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}
