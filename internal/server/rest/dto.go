package rest

import (
	"time"

	"github.com/dmitrijs2005/carstorage/internal/server/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	IsAdmin     bool   `json:"is_admin"`
}

type updateUserRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Password    *string `json:"password"`
	IsAdmin     *bool   `json:"is_admin"`
}

type userResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	IsAdmin     bool   `json:"is_admin"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, PhoneNumber: u.PhoneNumber, IsAdmin: u.IsAdmin}
}

type createCarRequest struct {
	Color          string  `json:"color"`
	Make           string  `json:"make" validate:"required"`
	Model          string  `json:"model" validate:"required"`
	Year           string  `json:"year"`
	Notes          string  `json:"notes"`
	ProjPickupDate string  `json:"proj_pickup_date"`
	DateAdded      *string `json:"date_added"`
	UserID         int64   `json:"user_id"`
}

type updateCarRequest struct {
	Color          *string `json:"color"`
	Make           *string `json:"make"`
	Model          *string `json:"model"`
	Year           *string `json:"year"`
	Notes          *string `json:"notes"`
	ProjPickupDate *string `json:"proj_pickup_date"`
}

type createCarResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type carResponse struct {
	ID             int64  `json:"id"`
	Color          string `json:"color"`
	Make           string `json:"make"`
	Model          string `json:"model"`
	Year           string `json:"year"`
	Notes          string `json:"notes"`
	DateAdded      string `json:"date_added"`
	ProjPickupDate string `json:"proj_pickup_date"`
	UserID         int64  `json:"user_id"`
	UserName       string `json:"user_name"`
	UserEmail      string `json:"user_email"`
	UserPhone      string `json:"user_phone"`
}

func newCarResponse(c *models.Car) carResponse {
	return carResponse{
		ID:             c.ID,
		Color:          c.Color,
		Make:           c.Make,
		Model:          c.Model,
		Year:           c.Year,
		Notes:          c.Notes,
		DateAdded:      c.DateAdded,
		ProjPickupDate: c.ProjPickupDate,
		UserID:         c.UserID,
		UserName:       c.OwnerName,
		UserEmail:      c.OwnerEmail,
		UserPhone:      c.OwnerPhone,
	}
}

type taskRequest struct {
	Title string `json:"title" validate:"required"`
}

type taskResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Done      bool   `json:"done"`
	CreatedAt string `json:"created_at"`
}

func newTaskResponse(t *models.Task) taskResponse {
	return taskResponse{ID: t.ID, Title: t.Title, Done: t.Done, CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339)}
}

// mapSlice converts records for the wire. The result is never nil so empty
// lists encode as [].
func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
