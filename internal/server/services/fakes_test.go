package services

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/carstorage/internal/common"
	"github.com/dmitrijs2005/carstorage/internal/dbx"
	"github.com/dmitrijs2005/carstorage/internal/server/config"
	"github.com/dmitrijs2005/carstorage/internal/server/models"
	"github.com/dmitrijs2005/carstorage/internal/server/repositories/cars"
	"github.com/dmitrijs2005/carstorage/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/carstorage/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

// store is an in-memory backing for the fake repositories. Repositories
// ignore the DBTX they are bound to, so transactions only show up in sqlmock.
type store struct {
	users  map[int64]*models.User
	cars   map[int64]*models.Car
	tasks  map[int64]*models.Task
	nextID int64

	// failWith, when set, is returned by every repository call.
	failWith error
	// carWriteErr, when set, is returned by car Create and Update only.
	carWriteErr error
}

func newStore() *store {
	return &store{
		users:  map[int64]*models.User{},
		cars:   map[int64]*models.Car{},
		tasks:  map[int64]*models.Task{},
		nextID: 100,
	}
}

func (s *store) id() int64 {
	s.nextID++
	return s.nextID
}

type fakeManager struct{ s *store }

func (m fakeManager) RunMigrations(context.Context, *sql.DB) error { return m.s.failWith }
func (m fakeManager) Users(dbx.DBTX) users.Repository            { return fakeUsers{m.s} }
func (m fakeManager) Cars(dbx.DBTX) cars.Repository              { return fakeCars{m.s} }
func (m fakeManager) Tasks(dbx.DBTX) tasks.Repository            { return fakeTasks{m.s} }

type fakeUsers struct{ s *store }

func (f fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	for _, x := range f.s.users {
		if x.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	c := *u
	c.ID = f.s.id()
	f.s.users[c.ID] = &c
	out := c
	return &out, nil
}

func (f fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	u, ok := f.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

func (f fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	for _, u := range f.s.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f fakeUsers) List(context.Context) ([]*models.User, error) {
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	out := []*models.User{}
	for _, u := range f.s.users {
		c := *u
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f fakeUsers) Update(_ context.Context, u *models.User) error {
	if f.s.failWith != nil {
		return f.s.failWith
	}
	if _, ok := f.s.users[u.ID]; !ok {
		return common.ErrorNotFound
	}
	c := *u
	f.s.users[u.ID] = &c
	return nil
}

func (f fakeUsers) Delete(_ context.Context, id int64) error {
	if _, ok := f.s.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.s.users, id)
	return nil
}

func (f fakeUsers) SetAdmin(_ context.Context, email string, isAdmin bool) error {
	for _, u := range f.s.users {
		if u.Email == email {
			u.IsAdmin = isAdmin
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeCars struct{ s *store }

func (f fakeCars) List(_ context.Context, ownerID int64) ([]*models.Car, error) {
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	out := []*models.Car{}
	for _, c := range f.s.cars {
		if ownerID != 0 && c.UserID != ownerID {
			continue
		}
		cp := *c
		if u, ok := f.s.users[c.UserID]; ok {
			cp.OwnerName, cp.OwnerEmail, cp.OwnerPhone = u.Name, u.Email, u.PhoneNumber
		}
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f fakeCars) Get(_ context.Context, id int64) (*models.Car, error) {
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	c, ok := f.s.cars[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (f fakeCars) Create(_ context.Context, c *models.Car) (int64, error) {
	if f.s.failWith != nil {
		return 0, f.s.failWith
	}
	if f.s.carWriteErr != nil {
		return 0, f.s.carWriteErr
	}
	cp := *c
	cp.ID = f.s.id()
	f.s.cars[cp.ID] = &cp
	return cp.ID, nil
}

func (f fakeCars) Update(_ context.Context, c *models.Car) error {
	if f.s.carWriteErr != nil {
		return f.s.carWriteErr
	}
	if _, ok := f.s.cars[c.ID]; !ok {
		return common.ErrorNotFound
	}
	cp := *c
	f.s.cars[c.ID] = &cp
	return nil
}

func (f fakeCars) Delete(_ context.Context, id int64) error {
	if _, ok := f.s.cars[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.s.cars, id)
	return nil
}

func (f fakeCars) DeleteByOwner(_ context.Context, ownerID int64) (int64, error) {
	var n int64
	for id, c := range f.s.cars {
		if c.UserID == ownerID {
			delete(f.s.cars, id)
			n++
		}
	}
	return n, nil
}

type fakeTasks struct{ s *store }

func (f fakeTasks) List(_ context.Context, userID int64) ([]*models.Task, error) {
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	out := []*models.Task{}
	for _, t := range f.s.tasks {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeTasks) Create(_ context.Context, t *models.Task) (*models.Task, error) {
	if f.s.failWith != nil {
		return nil, f.s.failWith
	}
	cp := *t
	cp.ID = f.s.id()
	cp.CreatedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	f.s.tasks[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f fakeTasks) Toggle(_ context.Context, id, userID int64) (*models.Task, error) {
	t, ok := f.s.tasks[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrorNotFound
	}
	t.Done = !t.Done
	cp := *t
	return &cp, nil
}

func (f fakeTasks) Delete(_ context.Context, id, userID int64) error {
	t, ok := f.s.tasks[id]
	if !ok || t.UserID != userID {
		return common.ErrorNotFound
	}
	delete(f.s.tasks, id)
	return nil
}

// seed adds an admin (1) and a member (2), each owning one car.
func seed(t *testing.T, s *store) {
	t.Helper()
	hash := mustHash(t, "secret")
	s.users[1] = &models.User{ID: 1, Name: "Admin", Email: "admin@x", PasswordHash: hash, IsAdmin: true}
	s.users[2] = &models.User{ID: 2, Name: "Bob", Email: "bob@x", PasswordHash: hash}
	s.cars[10] = &models.Car{ID: 10, Make: "Honda", Model: "Civic", UserID: 1, DateAdded: "2025-01-01"}
	s.cars[11] = &models.Car{ID: 11, Make: "Ford", Model: "Focus", UserID: 2, DateAdded: "2025-01-02"}
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{SecretKey: "k", TokenValidityDuration: time.Hour}
}

var (
	admin  = Caller{UserID: 1, IsAdmin: true}
	member = Caller{UserID: 2}
)

func ptr[T any](v T) *T { return &v }
