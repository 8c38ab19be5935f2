package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering with an already used email.
	ErrEmailTaken = errors.New("Email already registered")
	// ErrInvalidCredentials is returned on unknown email or wrong password,
	// with no distinction between the two to avoid account enumeration.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrProjectNotFound covers both missing projects and projects owned by
	// someone else; the two are indistinguishable to the caller.
	ErrProjectNotFound = errors.New("Project not found")
	// ErrUserNotFound is returned when a token references a deleted user.
	ErrUserNotFound = errors.New("Unauthorized")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse
// to a generic 500; the original error stays server-side.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrProjectNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
