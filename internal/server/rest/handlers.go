package rest

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/carstorage/internal/server/services"
	"github.com/labstack/echo/v4"
)

// pathID parses :id. Anything that is not a positive integer cannot name a
// record, so it reads as missing.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errNotFound
	}
	return id, nil
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errBadBody
	}
	token, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errBadBody
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Name, email, and password required")
	}

	_, err := s.users.Register(c.Request().Context(), caller(c), services.Registration{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		IsAdmin:     req.IsAdmin,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "User registered"})
}

func (s *Server) listUsers(c echo.Context) error {
	users, err := s.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(users, newUserResponse))
}

func (s *Server) updateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return errBadBody
	}

	err = s.users.Update(c.Request().Context(), caller(c), id, services.UserPatch{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		IsAdmin:     req.IsAdmin,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User updated"})
}

func (s *Server) deleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.users.Delete(c.Request().Context(), caller(c), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted"})
}

func (s *Server) listCars(c echo.Context) error {
	cars, err := s.cars.List(c.Request().Context(), caller(c), c.QueryParam("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(cars, newCarResponse))
}

func (s *Server) createCar(c echo.Context) error {
	var req createCarRequest
	if err := c.Bind(&req); err != nil {
		return errBadBody
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Make and model are required")
	}

	id, err := s.cars.Create(c.Request().Context(), caller(c), services.CarInput{
		Color:          req.Color,
		Make:           req.Make,
		Model:          req.Model,
		Year:           req.Year,
		Notes:          req.Notes,
		ProjPickupDate: req.ProjPickupDate,
		DateAdded:      req.DateAdded,
		UserID:         req.UserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createCarResponse{Message: "Car added", ID: id})
}

func (s *Server) updateCar(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateCarRequest
	if err := c.Bind(&req); err != nil {
		return errBadBody
	}

	err = s.cars.Update(c.Request().Context(), caller(c), id, services.CarPatch{
		Color:          req.Color,
		Make:           req.Make,
		Model:          req.Model,
		Year:           req.Year,
		Notes:          req.Notes,
		ProjPickupDate: req.ProjPickupDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Car updated"})
}

func (s *Server) deleteCar(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.cars.Delete(c.Request().Context(), caller(c), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Car deleted"})
}

func (s *Server) listTasks(c echo.Context) error {
	tasks, err := s.tasks.List(c.Request().Context(), caller(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(tasks, newTaskResponse))
}

func (s *Server) createTask(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return errBadBody
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Title is required")
	}
	t, err := s.tasks.Create(c.Request().Context(), caller(c), req.Title)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newTaskResponse(t))
}

func (s *Server) toggleTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	t, err := s.tasks.Toggle(c.Request().Context(), caller(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newTaskResponse(t))
}

func (s *Server) deleteTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.tasks.Delete(c.Request().Context(), caller(c), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Task deleted"})
}
