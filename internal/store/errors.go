package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store or is soft-deleted. This is the generic version of the
	// entity-specific not found errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a uniqueness
	// constraint (e.g., an active employee with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrEmployeeNotFound indicates that the requested employee does not exist
	// or is soft-deleted.
	ErrEmployeeNotFound = fmt.Errorf("%w: employee", ErrNotFound)

	// ErrRoleNotFound indicates that the requested role does not exist,
	// is soft-deleted, or is not attached to the employee.
	ErrRoleNotFound = fmt.Errorf("%w: role", ErrNotFound)

	// ErrSkillNotFound indicates that the requested skill does not exist or
	// is soft-deleted.
	ErrSkillNotFound = fmt.Errorf("%w: skill", ErrNotFound)

	// ErrAccountNotFound indicates that the employee has no active account.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that an active employee with the given email
	// already exists. Soft-deleted rows do not count against uniqueness.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrSkillNameExists indicates that an active catalog skill with the given
	// name already exists. Names are the catalog's natural key.
	ErrSkillNameExists = fmt.Errorf("%w: skill name", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
