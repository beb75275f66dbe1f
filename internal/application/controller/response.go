package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"todo-tracker/internal/domain/model"
	"todo-tracker/pkg/msg"
	"todo-tracker/pkg/util/numberutils"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain errors to their HTTP status; anything else is a 500.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidArgument):
		status = http.StatusBadRequest
	}
	return c.JSON(status, ErrorResponse{Error: err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func invalidBody(c echo.Context) error {
	return badRequest(c, msg.GetMessage("app.invalid-body"))
}

// pathID reads a positive identifier from a path parameter.
func pathID(c echo.Context, name string) (uint, bool) {
	id, err := numberutils.ToPositiveUint(c.Param(name))
	return id, err == nil
}

func invalidID(c echo.Context, value string) error {
	return badRequest(c, msg.GetMessage("app.invalid-id", value))
}
