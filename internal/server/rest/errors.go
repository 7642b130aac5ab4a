package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/carstorage/internal/common"
	"github.com/dmitrijs2005/carstorage/internal/server/services"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

var (
	errBadBody  = echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errNotFound = echo.NewHTTPError(http.StatusNotFound, "Not found")
)

func statusFor(kind error) int {
	switch {
	case errors.Is(kind, common.ErrorValidation), errors.Is(kind, common.ErrorAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(kind, common.ErrInvalidCredentials), errors.Is(kind, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, common.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(kind, common.ErrorNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// handleError renders every failure as {"error": msg}. Anything that is not
// a rejected request or an echo error is logged and reported as a 500.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := "Internal server error"

	var se *services.Error
	var he *echo.HTTPError
	switch {
	case errors.As(err, &se):
		status, msg = statusFor(se.Kind), se.Message
	case errors.As(err, &he):
		status = he.Code
		msg = fmt.Sprint(he.Message)
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"error", err,
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, errorResponse{Error: msg})
	}
	if err != nil {
		s.logger.Error(c.Request().Context(), "error writing response", "error", err)
	}
}
