package cli

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/carstorage/internal/client/client"
	"github.com/dmitrijs2005/carstorage/internal/client/models"
)

// describe turns an error into the one line shown to the user.
func describe(err error) string {
	var (
		verr *models.ValidationError
		aerr *client.AuthError
		herr *client.HTTPError
		terr *client.TransportError
	)
	switch {
	case errors.As(err, &verr):
		return "Please fill out required fields: " + strings.Join(verr.Fields, ", ")
	case errors.As(err, &aerr):
		return aerr.Err.Message
	case errors.As(err, &herr):
		if errors.Is(err, client.ErrUnauthorized) && herr.StatusCode == 401 {
			return herr.Message + " (try logging in again)"
		}
		return herr.Message
	case errors.As(err, &terr):
		return "Server unreachable: " + terr.Err.Error()
	}
	return err.Error()
}
