package server

import (
	"errors"
	"net/http"

	"github.com/convokit/chatbot-api/internal/models"
	"github.com/labstack/echo/v4"
	"google.golang.org/grpc/status"
)

// errorHandler maps domain sentinel errors to HTTP statuses: absent
// entities become 404, a duplicate email becomes 409, everything else
// untyped is a 500.
func errorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			c.Logger().Error(err)
		case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrUserNotFound):
			he = echo.NewHTTPError(http.StatusNotFound, status.Convert(err).Message())
		case errors.Is(err, models.ErrEmailExists):
			he = echo.NewHTTPError(http.StatusConflict, status.Convert(err).Message())
		default:
			he = &echo.HTTPError{
				Code:    http.StatusInternalServerError,
				Message: http.StatusText(http.StatusInternalServerError),
			}
		}

		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead {
				err = c.NoContent(he.Code)
			} else {
				err = c.JSON(he.Code, he)
			}
			if err != nil {
				c.Logger().Error(err)
			}
		}
	}
}
