// Package respond writes the {success, data, message} envelopes every
// handler answers with.
package respond

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/schema"
)

func OK[T any](c echo.Context, status int, data T) error {
	return c.JSON(status, entities.OK(data))
}

func Fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, entities.Fail(msg))
}

// Error maps err onto a status: validation failures are 400, notFound is
// 404, anything else 500.
func Error(c echo.Context, err error, notFound error) error {
	var fe schema.FieldErrors
	switch {
	case errors.As(err, &fe):
		return Fail(c, http.StatusBadRequest, fe.Error())
	case notFound != nil && errors.Is(err, notFound):
		return Fail(c, http.StatusNotFound, err.Error())
	}
	return Fail(c, http.StatusInternalServerError, err.Error())
}
