// Package response holds the JSON envelopes shared by every handler.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Message is the body for acknowledgements and not-found replies.
type Message struct {
	Message string `json:"message"`
}

// Failure is the body for 4xx/5xx replies that carry an underlying error.
type Failure struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// OK replies 200 with {message}.
func OK(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, Message{Message: msg})
}

// NotFound replies 404 with {message} and no error detail.
func NotFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, Message{Message: msg})
}

// BadRequest replies 400 when the request body cannot be decoded.
func BadRequest(c echo.Context, msg string, err error) error {
	return c.JSON(http.StatusBadRequest, Failure{Message: msg, Error: errText(err)})
}

// Internal replies 500 with {message, error}.
func Internal(c echo.Context, msg string, err error) error {
	return c.JSON(http.StatusInternalServerError, Failure{Message: msg, Error: errText(err)})
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
