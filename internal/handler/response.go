package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "protrack/internal/errors"
	"protrack/internal/validation"
)

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// respondData writes a success envelope.
func respondData(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

// respondError writes a failure envelope.
func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Error: message})
}

// RespondUnauthorized writes the uniform 401 envelope. Exposed for the JWT
// middleware, which reports every token failure the same way.
func RespondUnauthorized(c echo.Context) error {
	return respondError(c, http.StatusUnauthorized, "Unauthorized")
}

// respondServiceError maps validation and domain errors onto the envelope.
// Internal failures are logged server-side; their detail reaches the client
// only outside production.
func respondServiceError(c echo.Context, err error, debug bool) error {
	if verr, ok := err.(*validation.Error); ok {
		return respondError(c, http.StatusBadRequest, verr.Error())
	}

	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Errorf("internal error: %v", err)
		if debug {
			return respondError(c, httpErr.StatusCode, err.Error())
		}
	}
	return respondError(c, httpErr.StatusCode, httpErr.Message)
}
