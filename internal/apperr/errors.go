// Package apperr defines the request-level error taxonomy and its HTTP mapping.
package apperr

import (
	"errors"
	"io/fs"
	"net/http"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrPermission  = errors.New("permission denied")
	ErrInvalidData = errors.New("invalid data")
)

// FromFS translates a filesystem error into the taxonomy. Missing files become
// ErrNotFound and access failures become ErrPermission; anything else passes
// through unchanged so the original cause stays available for logging.
func FromFS(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermission
	default:
		return err
	}
}

// Status maps an error to the HTTP status code the request should end with.
// Errors outside the taxonomy are internal failures.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrPermission):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
