package service

import (
	"errors"
	"fmt"

	"github.com/gobidev/ems-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is(); the API layer maps each to an HTTP
// status code.
//
// Error handling principles:
//  1. Expected conditions (not found, conflict, bad credentials) surface as
//     sentinel errors, verbatim, never downgraded.
//  2. Unexpected collaborator failures are wrapped in *ServiceError with the
//     operation name and target identifier for diagnostics.
//  3. No operation retries automatically.
var (
	// ErrInvalidCredentials is returned when authentication fails. The same
	// value covers an unknown email and a wrong password so that callers
	// cannot discover which emails are registered.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotOwned indicates a resource is owned by a different employee than
	// the one making the request. Reserved for ownership checks; not yet
	// enforced end-to-end.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another employee")

	// ErrAccountExists indicates the employee already has an active account.
	// API layer should map this to HTTP 409 Conflict.
	ErrAccountExists = fmt.Errorf("%w: account", store.ErrDuplicate)

	// ErrNoSkills indicates the employee's skill list is empty or absent.
	// API layer should map this to HTTP 404 Not Found.
	ErrNoSkills = fmt.Errorf("%w: employee has no skills", store.ErrNotFound)
)

// ServiceError wraps an unexpected collaborator failure with enough context
// to diagnose it: the operation, the entity, and the target identifier.
// Credential material never goes into the message.
type ServiceError struct {
	Op     string // The operation that failed (e.g., "register", "delete")
	Entity string // The entity type (e.g., "employee", "role")
	ID     string // Target identifier, if known
	Err    error  // Original error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// wrapErr passes expected error kinds through verbatim and wraps everything
// else in a *ServiceError. NotFound, Conflict, and Unauthorized must reach
// the caller undamaged; anything else is an internal failure.
func wrapErr(op, entity, id string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrNotFound) ||
		errors.Is(err, store.ErrDuplicate) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrNotOwned) {
		return err
	}
	return &ServiceError{Op: op, Entity: entity, ID: id, Err: err}
}
