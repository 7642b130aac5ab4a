package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/carstorage/internal/client/client"
	"github.com/dmitrijs2005/carstorage/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderCars_OwnerColumn(t *testing.T) {
	cars := []models.Car{
		{ID: 2, Make: "Honda", Model: "Civic", Color: "red", OwnerName: "Ann", OwnerEmail: "ann@x"},
		{ID: 1, Make: "Ford", Model: "Focus"},
	}

	var buf bytes.Buffer
	renderCars(&buf, cars, true)
	out := buf.String()
	assert.Contains(t, out, "OWNER")
	assert.Contains(t, out, "Ann <ann@x>")
	assert.Equal(t, 3, strings.Count(out, "\n"))

	buf.Reset()
	renderCars(&buf, cars, false)
	assert.NotContains(t, buf.String(), "OWNER")
	assert.NotContains(t, buf.String(), "ann@x")
}

func TestRenderCars_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderCars(&buf, nil, true)
	assert.Equal(t, "No cars found.\n", buf.String())
}

func TestRenderUsersAndTasks(t *testing.T) {
	var buf bytes.Buffer
	renderUsers(&buf, []models.User{{ID: 1, Name: "Admin", Email: "a@x", IsAdmin: true}})
	assert.Contains(t, buf.String(), "a@x")
	assert.Contains(t, buf.String(), "*")

	buf.Reset()
	renderTasks(&buf, []models.Task{{ID: 3, Title: "wash", Done: true}, {ID: 4, Title: "wax"}})
	assert.Equal(t, "[x] 3  wash\n[ ] 4  wax\n", buf.String())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", &models.ValidationError{Fields: []string{"make", "model"}}, "Please fill out required fields: make, model"},
		{"auth", &client.AuthError{Err: &client.HTTPError{StatusCode: 401, Message: "Invalid credentials"}}, "Invalid credentials"},
		{"expired", fmt.Errorf("list cars: %w", &client.HTTPError{StatusCode: 401, Message: "Invalid token"}), "Invalid token (try logging in again)"},
		{"forbidden", &client.HTTPError{StatusCode: 403, Message: "Forbidden"}, "Forbidden"},
		{"transport", &client.TransportError{Op: "GET /api/cars", Err: errors.New("connection refused")}, "Server unreachable: connection refused"},
		{"plain", errors.New("usage: edit <car id>"), "usage: edit <car id>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.err))
		})
	}
}
