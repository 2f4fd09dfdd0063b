// Package server provides the HTTP REST API for the interview coach.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/interview-coach/internal/analysis"
	"github.com/jonathan/interview-coach/internal/interview"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrSessionForbidden indicates the session token does not match the
// requested session.
type ErrSessionForbidden struct{}

func (e *ErrSessionForbidden) Error() string {
	return "token is not valid for this interview session"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var validation *ErrValidation
	var emptyInput *analysis.EmptyInputError
	var forbidden *ErrSessionForbidden

	switch {
	case errors.Is(err, interview.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, interview.ErrSessionCompleted):
		return http.StatusBadRequest
	case errors.As(err, &validation), errors.As(err, &emptyInput):
		return http.StatusBadRequest
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
