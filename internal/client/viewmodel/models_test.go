package viewmodel

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
	"github.com/dmitrijs2005/carstorage/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCars_LoadUsesScopeQuery(t *testing.T) {
	api := &fakeCarsAPI{cars: []models.Car{{ID: 1}}}
	cars := NewCars(api, func() url.Values { return url.Values{"user_id": {"all"}} })

	require.NoError(t, cars.Load(context.Background()))
	assert.Equal(t, "all", api.LastQuery.Get("user_id"))
	assert.Equal(t, 1, cars.Len())

	self := NewCars(api, nil)
	require.NoError(t, self.Load(context.Background()))
	assert.Nil(t, api.LastQuery)
}

func TestCars_CreateWithEmptyMakeNeverReachesServer(t *testing.T) {
	api := &fakeCarsAPI{}
	cars := NewCars(api, nil)

	err := cars.Create(context.Background(), models.CarDraft{Model: "Golf"})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"make"}, verr.Fields)
	assert.Zero(t, api.Mutations)
	assert.Zero(t, api.ListCalls)
}

func TestCars_CreateReloads(t *testing.T) {
	api := &fakeCarsAPI{}
	cars := NewCars(api, nil)

	require.NoError(t, cars.Create(context.Background(), models.CarDraft{Make: " VW ", Model: "Golf", OwnerID: 3}))
	assert.Equal(t, "VW", api.LastDraft.Make)
	assert.Equal(t, int64(3), api.LastDraft.OwnerID)
	assert.Equal(t, 1, api.ListCalls)

	got := cars.Derived()
	require.Len(t, got, 1)
	assert.Equal(t, "2025-01-01", got[0].DateAdded, "server-assigned fields come from the reload")
}

func TestCars_UpdateShowsServerState(t *testing.T) {
	api := &fakeCarsAPI{cars: []models.Car{{ID: 7, Make: "VW", Model: "Golf", Year: "2001"}}}
	cars := NewCars(api, nil)
	ctx := context.Background()
	require.NoError(t, cars.Load(ctx))

	require.NoError(t, cars.Update(ctx, 7, models.CarDraft{Make: "VW", Model: "Polo", Year: "2003"}))

	got := cars.Derived()
	require.Len(t, got, 1)
	assert.Equal(t, "Polo", got[0].Model)
	assert.Equal(t, "updated by server", got[0].Notes)
	assert.Equal(t, 2, api.ListCalls)
}

func TestCars_FailedMutationLeavesCollection(t *testing.T) {
	api := &fakeCarsAPI{cars: []models.Car{{ID: 7, Make: "VW", Model: "Golf"}}}
	cars := NewCars(api, nil)
	ctx := context.Background()
	require.NoError(t, cars.Load(ctx))

	api.Err = errors.New("500")
	require.Error(t, cars.Update(ctx, 7, models.CarDraft{Make: "X", Model: "Y"}))
	require.Error(t, cars.Remove(ctx, 7))

	assert.Equal(t, "Golf", cars.Derived()[0].Model)
	assert.Equal(t, 1, api.ListCalls, "no reload after a failure")
}

func TestCars_ReloadFailureIsReported(t *testing.T) {
	api := &fakeCarsAPI{cars: []models.Car{{ID: 7, Make: "VW", Model: "Golf"}}}
	cars := NewCars(api, nil)
	ctx := context.Background()
	require.NoError(t, cars.Load(ctx))

	api.ListErr = errors.New("gone")
	err := cars.Remove(ctx, 7)
	require.ErrorContains(t, err, "delete car succeeded, reload failed")
	assert.Equal(t, 1, cars.Len())
}

func TestCars_EditBuffer(t *testing.T) {
	api := &fakeCarsAPI{cars: []models.Car{{ID: 7, Make: "VW", Model: "Golf"}}}
	cars := NewCars(api, nil)
	ctx := context.Background()
	require.NoError(t, cars.Load(ctx))

	require.ErrorIs(t, cars.Edit.Save(ctx), ErrNoEdit)

	car, _ := cars.Find(7)
	cars.Edit.BeginEdit(car.ID, car.Draft())
	cars.Edit.Modify(func(d *models.CarDraft) { d.Model = "" })

	err := cars.Edit.Save(ctx)
	require.ErrorIs(t, err, common.ErrorValidation)
	_, id, active := cars.Edit.Draft()
	assert.True(t, active, "a rejected draft stays open")
	assert.Equal(t, int64(7), id)

	cars.Edit.Modify(func(d *models.CarDraft) { d.Model = "Passat" })
	require.NoError(t, cars.Edit.Save(ctx))
	_, _, active = cars.Edit.Draft()
	assert.False(t, active)
	assert.Equal(t, "Passat", cars.Derived()[0].Model)

	cars.Edit.BeginCreate(models.CarDraft{Make: "Fiat", Model: "Uno"})
	cars.Edit.Cancel()
	require.ErrorIs(t, cars.Edit.Save(ctx), ErrNoEdit)

	cars.Edit.BeginCreate(models.CarDraft{Make: "Fiat", Model: "Uno"})
	require.NoError(t, cars.Edit.Save(ctx))
	assert.Equal(t, 2, cars.Len())
}

func TestUsers_Mutations(t *testing.T) {
	api := &fakeUsersAPI{users: []models.User{{ID: 1, Name: "Ann"}}}
	users := NewUsers(api)
	ctx := context.Background()

	err := users.Create(ctx, models.Registration{Name: "Bob", Email: "b@x"})
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Zero(t, api.ListCalls)

	require.NoError(t, users.Create(ctx, models.Registration{Name: "Bob", Email: "b@x", Password: "pw"}))
	assert.Equal(t, 2, users.Len())

	require.NoError(t, users.Update(ctx, 1, models.UserDraft{Name: "Anna", Email: "a@x"}))
	u, ok := users.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Anna", u.Name)

	require.NoError(t, users.Remove(ctx, 2))
	assert.Equal(t, []int64{2}, api.Deleted)
	assert.Equal(t, 3, api.ListCalls)
}

func TestTasks_Mutations(t *testing.T) {
	api := &fakeTasksAPI{}
	tasks := NewTasks(api)
	ctx := context.Background()

	require.ErrorIs(t, tasks.Create(ctx, models.TaskDraft{}), common.ErrorValidation)

	require.NoError(t, tasks.Create(ctx, models.TaskDraft{Title: "wax"}))
	require.NoError(t, tasks.Toggle(ctx, 1))
	tk, ok := tasks.Find(1)
	require.True(t, ok)
	assert.True(t, tk.Done)

	require.Error(t, tasks.Toggle(ctx, 99))
	require.NoError(t, tasks.Remove(ctx, 1))
	assert.Zero(t, tasks.Len())
	assert.Equal(t, 3, api.ListCalls)
}
