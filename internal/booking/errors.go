package booking

import (
	"errors"
	"fmt"
)

// Workflow outcomes surfaced to the HTTP boundary. Handlers map these onto
// status codes; anything not in this taxonomy is an internal failure.
var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("application not found")
	ErrRejected        = errors.New("cannot accept a rejected application")
	ErrConflict        = errors.New("illegal status transition")
	ErrValidation      = errors.New("invalid input")
	ErrAdminCheck      = errors.New("failed to verify admin role")
)

// ErrRejectedTransition wraps ErrConflict with the offending transition.
func ErrRejectedTransition(from, to string) error {
	return fmt.Errorf("%w: %s -> %s", ErrConflict, from, to)
}
