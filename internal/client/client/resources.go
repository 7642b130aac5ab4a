package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.Do(ctx, http.MethodPost, "/api/login", RequestOptions{Body: creds}, &resp)
	if err != nil {
		return "", asAuthError(err)
	}
	if resp.Token == "" {
		return "", &AuthError{Err: &HTTPError{StatusCode: http.StatusOK, Message: "no token in response"}}
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) error {
	// The token, when present, lets an admin create admin accounts.
	err := c.Do(ctx, http.MethodPost, "/api/register", RequestOptions{Body: reg, Auth: true}, nil)
	return asAuthError(err)
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	return list[models.User](ctx, c, "/api/users", RequestOptions{Auth: true})
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int64, d models.UserDraft) error {
	return c.Do(ctx, http.MethodPut, fmt.Sprintf("/api/update_user/%d", id), RequestOptions{Body: d, Auth: true}, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), RequestOptions{Auth: true}, nil)
}

// ListCars fetches cars narrowed by query, typically user_id=<id|all>. A nil
// query leaves scoping to the server.
func (c *HTTPClient) ListCars(ctx context.Context, query url.Values) ([]models.Car, error) {
	return list[models.Car](ctx, c, "/api/cars", RequestOptions{Query: query, Auth: true})
}

func (c *HTTPClient) CreateCar(ctx context.Context, d models.CarDraft) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.Do(ctx, http.MethodPost, "/api/cars", RequestOptions{Body: d, Auth: true}, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (c *HTTPClient) UpdateCar(ctx context.Context, id int64, d models.CarDraft) error {
	// the owner never changes after creation
	d.OwnerID = 0
	return c.Do(ctx, http.MethodPut, fmt.Sprintf("/api/cars/%d", id), RequestOptions{Body: d, Auth: true}, nil)
}

func (c *HTTPClient) DeleteCar(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/cars/%d", id), RequestOptions{Auth: true}, nil)
}

func (c *HTTPClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	return list[models.Task](ctx, c, "/api/tasks", RequestOptions{Auth: true})
}

func (c *HTTPClient) CreateTask(ctx context.Context, d models.TaskDraft) (models.Task, error) {
	var t models.Task
	err := c.Do(ctx, http.MethodPost, "/api/tasks", RequestOptions{Body: d, Auth: true}, &t)
	return t, err
}

func (c *HTTPClient) ToggleTask(ctx context.Context, id int64) (models.Task, error) {
	var t models.Task
	err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), RequestOptions{Auth: true}, &t)
	return t, err
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), RequestOptions{Auth: true}, nil)
}

var _ Client = (*HTTPClient)(nil)
