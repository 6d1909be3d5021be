package store

import (
	"context"

	"github.com/gobidev/ems-api/internal/domain"
)

// RoleStore defines the persistence gateway for the role catalog.
type RoleStore interface {
	// Create saves a new role and fills in its generated id.
	Create(ctx context.Context, role *domain.Role) error

	// GetByID retrieves an active role by id.
	// Returns ErrRoleNotFound if the role does not exist or is soft-deleted.
	GetByID(ctx context.Context, id int) (*domain.Role, error)

	// FindByDesignationAndDepartment retrieves the active role matching the
	// exact (designation, department) pair.
	// Returns ErrRoleNotFound if no such role exists.
	FindByDesignationAndDepartment(ctx context.Context, designation, department string) (*domain.Role, error)

	// Save overwrites an existing role's fields, including the soft-delete flag.
	// Returns ErrRoleNotFound if the row does not exist.
	Save(ctx context.Context, role *domain.Role) error
}
