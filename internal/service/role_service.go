package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gobidev/ems-api/internal/domain"
	"github.com/gobidev/ems-api/internal/store"
)

// RoleService manages the role attached to an employee. The owning employee
// is always resolved through the EmployeeService, never read from the store
// directly.
type RoleService interface {
	// AddRole persists a new role from the draft and attaches it to the
	// employee. Returns store.ErrEmployeeNotFound if the employee is absent.
	AddRole(ctx context.Context, employeeID int, draft *domain.Role) (*domain.Role, error)

	// GetEmployeeRole returns the employee's attached role.
	// Returns store.ErrRoleNotFound if no role is attached.
	GetEmployeeRole(ctx context.Context, employeeID int) (*domain.Role, error)

	// UpdateRole attaches the existing active role matching the draft's
	// (designation, department) pair, or creates and attaches a new role when
	// no match exists. No duplicate role row is ever created for a known pair.
	UpdateRole(ctx context.Context, employeeID int, draft *domain.Role) (*domain.Role, error)

	// DeleteRole detaches the employee's role and soft-deletes the role row.
	// The role is saved before the employee; the two writes are separate
	// atomic calls, not one transaction.
	DeleteRole(ctx context.Context, employeeID int) error
}

// RoleServiceImpl implements the RoleService interface.
type RoleServiceImpl struct {
	roleStore store.RoleStore
	employees EmployeeService
	logger    *slog.Logger
}

// Ensure RoleServiceImpl implements RoleService interface
var _ RoleService = (*RoleServiceImpl)(nil)

// NewRoleService creates a new RoleService.
func NewRoleService(
	roleStore store.RoleStore,
	employees EmployeeService,
	logger *slog.Logger,
) *RoleServiceImpl {
	return &RoleServiceImpl{
		roleStore: roleStore,
		employees: employees,
		logger:    logger.With("component", "role_service"),
	}
}

// AddRole persists a new role and attaches it to the employee.
func (s *RoleServiceImpl) AddRole(
	ctx context.Context,
	employeeID int,
	draft *domain.Role,
) (*domain.Role, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	role := &domain.Role{
		Designation: draft.Designation,
		Department:  draft.Department,
	}
	if err := s.roleStore.Create(ctx, role); err != nil {
		s.logger.Error("failed to create role",
			"error", err,
			"designation", draft.Designation)
		return nil, wrapErr("add", "role", "", err)
	}

	employee.Role = role
	if err := s.employees.Save(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info("role added",
		"role_id", role.ID,
		"employee_id", employeeID)
	return role, nil
}

// GetEmployeeRole returns the role attached to the employee.
func (s *RoleServiceImpl) GetEmployeeRole(
	ctx context.Context,
	employeeID int,
) (*domain.Role, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if employee.Role == nil {
		s.logger.Debug("employee has no role", "employee_id", employeeID)
		return nil, store.ErrRoleNotFound
	}

	return employee.Role, nil
}

// UpdateRole reattaches an existing (designation, department) role when one
// exists, otherwise creates a fresh one.
func (s *RoleServiceImpl) UpdateRole(
	ctx context.Context,
	employeeID int,
	draft *domain.Role,
) (*domain.Role, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	role, err := s.roleStore.FindByDesignationAndDepartment(
		ctx, draft.Designation, draft.Department)
	switch {
	case err == nil:
		// Reattach the existing row; no new role identity is created.
		s.logger.Debug("reattaching existing role",
			"role_id", role.ID,
			"employee_id", employeeID)
	case errors.Is(err, store.ErrRoleNotFound):
		role = &domain.Role{
			Designation: draft.Designation,
			Department:  draft.Department,
		}
		if err := s.roleStore.Create(ctx, role); err != nil {
			s.logger.Error("failed to create role",
				"error", err,
				"designation", draft.Designation)
			return nil, wrapErr("update", "role", "", err)
		}
	default:
		s.logger.Error("failed to look up role by designation and department",
			"error", err,
			"designation", draft.Designation,
			"department", draft.Department)
		return nil, wrapErr("update", "role", "", err)
	}

	employee.Role = role
	if err := s.employees.Save(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info("role updated for employee",
		"role_id", role.ID,
		"employee_id", employeeID)
	return role, nil
}

// DeleteRole detaches and soft-deletes the employee's role. The role row is
// saved first, then the employee; if the second save fails the role stays
// flagged while the employee still references it, which the caller observes
// as an internal error.
func (s *RoleServiceImpl) DeleteRole(ctx context.Context, employeeID int) error {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}

	role := employee.Role
	if role == nil {
		s.logger.Debug("employee has no role to delete", "employee_id", employeeID)
		return store.ErrRoleNotFound
	}

	employee.Role = nil
	role.IsDeleted = true

	if err := s.roleStore.Save(ctx, role); err != nil {
		s.logger.Error("failed to soft-delete role",
			"error", err,
			"role_id", role.ID)
		return wrapErr("delete", "role", strconv.Itoa(role.ID), err)
	}
	if err := s.employees.Save(ctx, employee); err != nil {
		return err
	}

	s.logger.Info("role deleted",
		"role_id", role.ID,
		"employee_id", employeeID)
	return nil
}
