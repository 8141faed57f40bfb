// Package httpapi is the HTTP boundary of the server: JSON envelope
// encoding, the auth gate, CORS/logging middleware, and the route handlers.
// Typed failures raised by the services are converted to the uniform error
// envelope here and nowhere else.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/avoronovs/partyplan/internal/common"
	"github.com/avoronovs/partyplan/internal/server/services"
)

// Error pairs an HTTP status with a machine-readable code, a human message,
// and optional field-level details.
type Error struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *Error) Error() string { return e.Message }

func newError(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

var errUnauthorized = newError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")

// asAppError maps any error to an *Error. Sentinels and validation failures
// keep their specific status/code; everything else is demoted to a 500 so
// infrastructure details never leak to clients.
func asAppError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return &Error{
			Status:  http.StatusBadRequest,
			Code:    "VALIDATION_ERROR",
			Message: "Invalid input data",
			Details: verr.Fields,
		}
	}

	switch {
	case errors.Is(err, common.ErrEmailExists):
		return newError(http.StatusBadRequest, "EMAIL_EXISTS", "This email is already registered")
	case errors.Is(err, common.ErrInvalidCredentials):
		return newError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, common.ErrDuplicateVote):
		return newError(http.StatusBadRequest, "DUPLICATE_VOTE", "You have already voted")
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return errUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		return newError(http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found")
	default:
		return newError(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred")
	}
}
