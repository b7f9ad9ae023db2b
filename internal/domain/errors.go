package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface keeps the response layer open to new
// error kinds without editing a central switch.
type HTTPError interface {
	error
	StatusCode() int
}

// Edge error types implementing HTTPError. The state container itself
// never raises; these exist only at the HTTP and transport boundaries.
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}

	// ForbiddenError indicates authorization failure
	ForbiddenError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *ForbiddenError) Error() string    { return e.Message }

func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }
func (e *ForbiddenError) StatusCode() int    { return http.StatusForbidden }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Is allows errors.Is() to match typed errors against their sentinels.
func (e *NotFoundError) Is(target error) bool     { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }
func (e *ForbiddenError) Is(target error) bool    { return target == ErrForbidden }
