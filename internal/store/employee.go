package store

import (
	"context"

	"github.com/gobidev/ems-api/internal/domain"
)

// EmployeeStore defines the persistence gateway for the employee aggregate.
// Every call is individually atomic; no transaction spans two calls.
//
// Unless a method says otherwise, lookups operate over active rows only:
// soft-deleted employees are treated as absent.
type EmployeeStore interface {
	// Create saves a new employee to the store.
	// Returns ErrEmailExists if an active employee with the same email
	// already exists.
	Create(ctx context.Context, employee *domain.Employee) error

	// GetByID retrieves an active employee by id, with its role, account,
	// and skills hydrated. Returns ErrEmployeeNotFound if the employee does
	// not exist or is soft-deleted.
	GetByID(ctx context.Context, id int) (*domain.Employee, error)

	// GetByEmail retrieves an active employee by email.
	// Returns ErrEmployeeNotFound if the employee does not exist or is
	// soft-deleted.
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)

	// FindByEmailAnyState retrieves an employee by email without filtering
	// on the soft-delete flag. Used only to resolve a missing id on update.
	// Returns ErrEmployeeNotFound if no row carries the email at all.
	FindByEmailAnyState(ctx context.Context, email string) (*domain.Employee, error)

	// ExistsByEmail reports whether an active employee with the given email
	// exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List returns active employees for the given zero-based page and page
	// size, in the store's stable default order.
	List(ctx context.Context, page, size int) ([]*domain.Employee, error)

	// Save overwrites the employee row together with its attachments: the
	// role reference, the owned account's fields and soft-delete flag, and
	// the full skill reference set. The whole write is one atomic call.
	// Returns ErrEmployeeNotFound if the row does not exist.
	Save(ctx context.Context, employee *domain.Employee) error
}
