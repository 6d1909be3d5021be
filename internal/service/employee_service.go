package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/gobidev/ems-api/internal/domain"
	"github.com/gobidev/ems-api/internal/service/auth"
	"github.com/gobidev/ems-api/internal/store"
)

// EmployeeService owns the employee aggregate lifecycle: registration,
// profile completion, lookup, update, soft-delete, and authentication.
// The dependent role/skill/account services resolve and persist the owning
// employee exclusively through this interface.
type EmployeeService interface {
	// Register creates a new employee from email and password only.
	// The password is hashed before storage and never echoed back.
	// Returns store.ErrEmailExists if an active employee with the email
	// already exists.
	Register(ctx context.Context, email, password string) (*domain.Employee, error)

	// AddDetails fills in the full profile for an employee identified by the
	// draft's email. Registration is a precondition: returns
	// store.ErrEmployeeNotFound if no active employee carries the email.
	// A fresh opaque UUID is generated on every successful call.
	AddDetails(ctx context.Context, draft *domain.Employee) (*domain.Employee, error)

	// GetByID returns the active employee matching id.
	// Returns store.ErrEmployeeNotFound if absent or soft-deleted.
	GetByID(ctx context.Context, id int) (*domain.Employee, error)

	// List returns active employees for the given zero-based page and page size.
	List(ctx context.Context, page, size int) ([]*domain.Employee, error)

	// Update overwrites an employee with the draft's fields. A draft without
	// an id has it resolved by email among all rows, including soft-deleted
	// ones. The stored credential hash and UUID are preserved when the draft
	// omits them.
	Update(ctx context.Context, draft *domain.Employee) (*domain.Employee, error)

	// Delete soft-deletes the active employee with the given id, cascading
	// the flag to its owned account through the same save.
	// Returns store.ErrEmployeeNotFound if absent or already deleted.
	Delete(ctx context.Context, id int) error

	// Authenticate verifies the credentials and returns a session token.
	// Unknown email and wrong password both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (string, error)

	// Save persists an already-resolved employee aggregate. Used by the
	// dependent services after mutating attachments.
	Save(ctx context.Context, employee *domain.Employee) error
}

// EmployeeServiceImpl implements the EmployeeService interface.
type EmployeeServiceImpl struct {
	employeeStore store.EmployeeStore
	hasher        auth.PasswordHasher
	verifier      auth.PasswordVerifier
	jwtService    auth.JWTService
	logger        *slog.Logger
}

// Ensure EmployeeServiceImpl implements EmployeeService interface
var _ EmployeeService = (*EmployeeServiceImpl)(nil)

// NewEmployeeService creates a new EmployeeService with its collaborators
// injected explicitly.
func NewEmployeeService(
	employeeStore store.EmployeeStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		employeeStore: employeeStore,
		hasher:        hasher,
		verifier:      verifier,
		jwtService:    jwtService,
		logger:        logger.With("component", "employee_service"),
	}
}

// Register creates a new employee with a hashed password.
func (s *EmployeeServiceImpl) Register(
	ctx context.Context,
	email, password string,
) (*domain.Employee, error) {
	employee, err := domain.NewEmployee(email, password)
	if err != nil {
		s.logger.Warn("employee registration failed validation",
			"error", err,
			"email", email)
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	exists, err := s.employeeStore.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to check email existence",
			"error", err,
			"email", email)
		return nil, wrapErr("register", "employee", email, err)
	}
	if exists {
		s.logger.Debug("attempted to register an existing email",
			"email", email)
		return nil, store.ErrEmailExists
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, wrapErr("register", "employee", email, err)
	}
	employee.HashedPassword = hashed
	employee.Password = ""

	if err := s.employeeStore.Create(ctx, employee); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register an existing email",
				"email", email)
		} else {
			s.logger.Error("failed to save employee",
				"error", err,
				"email", email)
		}
		return nil, wrapErr("register", "employee", email, err)
	}

	s.logger.Info("employee registered successfully",
		"employee_id", employee.ID,
		"email", employee.Email)

	return employee, nil
}

// AddDetails merges the draft's profile fields onto the registered employee
// with the same email and generates a fresh opaque UUID.
func (s *EmployeeServiceImpl) AddDetails(
	ctx context.Context,
	draft *domain.Employee,
) (*domain.Employee, error) {
	employee, err := s.employeeStore.GetByEmail(ctx, draft.Email)
	if err != nil {
		if errors.Is(err, store.ErrEmployeeNotFound) {
			s.logger.Debug("add details for unregistered email",
				"email", draft.Email)
		} else {
			s.logger.Error("failed to resolve employee by email",
				"error", err,
				"email", draft.Email)
		}
		return nil, wrapErr("add details", "employee", draft.Email, err)
	}

	employee.Name = draft.Name
	employee.DOB = draft.DOB
	employee.MobileNumber = draft.MobileNumber
	if draft.Type != "" {
		employee.Type = draft.Type
	}
	employee.UUID = uuid.NewString()

	if err := s.employeeStore.Save(ctx, employee); err != nil {
		s.logger.Error("failed to save employee details",
			"error", err,
			"employee_id", employee.ID)
		return nil, wrapErr("add details", "employee", draft.Email, err)
	}

	s.logger.Info("employee details added successfully",
		"employee_id", employee.ID,
		"uuid", employee.UUID)

	return employee, nil
}

// GetByID retrieves the active employee matching id.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	employee, err := s.employeeStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrEmployeeNotFound) {
			s.logger.Debug("employee not found", "employee_id", id)
		} else {
			s.logger.Error("failed to retrieve employee",
				"error", err,
				"employee_id", id)
		}
		return nil, wrapErr("get", "employee", strconv.Itoa(id), err)
	}
	return employee, nil
}

// List returns a page of active employees.
func (s *EmployeeServiceImpl) List(
	ctx context.Context,
	page, size int,
) ([]*domain.Employee, error) {
	employees, err := s.employeeStore.List(ctx, page, size)
	if err != nil {
		s.logger.Error("failed to list employees",
			"error", err,
			"page", page,
			"size", size)
		return nil, wrapErr("list", "employee", "", err)
	}
	return employees, nil
}

// Update overwrites an employee with the draft's fields. When the draft
// carries no id it is resolved by email among all rows, soft-deleted included;
// the lookup is deliberately unfiltered to match the established behavior.
// Fields no draft carries on the wire, the credential hash and the opaque
// UUID, are always taken from the stored row.
func (s *EmployeeServiceImpl) Update(
	ctx context.Context,
	draft *domain.Employee,
) (*domain.Employee, error) {
	var (
		existing *domain.Employee
		err      error
	)
	if draft.ID == 0 {
		existing, err = s.employeeStore.FindByEmailAnyState(ctx, draft.Email)
		if err != nil {
			if errors.Is(err, store.ErrEmployeeNotFound) {
				s.logger.Debug("no employee to update for email",
					"email", draft.Email)
			} else {
				s.logger.Error("failed to resolve employee id by email",
					"error", err,
					"email", draft.Email)
			}
			return nil, wrapErr("update", "employee", draft.Email, err)
		}
		draft.ID = existing.ID
	} else {
		existing, err = s.employeeStore.GetByID(ctx, draft.ID)
		if err != nil {
			if errors.Is(err, store.ErrEmployeeNotFound) {
				s.logger.Debug("no employee to update for id",
					"employee_id", draft.ID)
			} else {
				s.logger.Error("failed to resolve employee for update",
					"error", err,
					"employee_id", draft.ID)
			}
			return nil, wrapErr("update", "employee", strconv.Itoa(draft.ID), err)
		}
	}

	if draft.HashedPassword == "" {
		draft.HashedPassword = existing.HashedPassword
	}
	if draft.UUID == "" {
		draft.UUID = existing.UUID
	}

	if err := s.employeeStore.Save(ctx, draft); err != nil {
		s.logger.Error("failed to update employee",
			"error", err,
			"employee_id", draft.ID)
		return nil, wrapErr("update", "employee", strconv.Itoa(draft.ID), err)
	}

	s.logger.Info("employee updated successfully", "employee_id", draft.ID)
	return draft, nil
}

// Delete soft-deletes the employee and, when an account is attached, flips
// the account's flag through the same aggregate save.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int) error {
	employee, err := s.employeeStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrEmployeeNotFound) {
			s.logger.Debug("attempted to delete non-existent employee",
				"employee_id", id)
		} else {
			s.logger.Error("failed to resolve employee for delete",
				"error", err,
				"employee_id", id)
		}
		return wrapErr("delete", "employee", strconv.Itoa(id), err)
	}

	employee.IsDeleted = true
	if employee.Account != nil {
		employee.Account.IsDeleted = true
	}

	if err := s.employeeStore.Save(ctx, employee); err != nil {
		s.logger.Error("failed to save deleted employee",
			"error", err,
			"employee_id", id)
		return wrapErr("delete", "employee", strconv.Itoa(id), err)
	}

	s.logger.Info("employee deleted successfully", "employee_id", id)
	return nil
}

// Authenticate verifies credentials and issues a session token. Both failure
// paths collapse to ErrInvalidCredentials so the response never reveals
// whether the email is registered.
func (s *EmployeeServiceImpl) Authenticate(
	ctx context.Context,
	email, password string,
) (string, error) {
	employee, err := s.employeeStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrEmployeeNotFound) {
			s.logger.Debug("authentication attempt for unknown email")
			return "", ErrInvalidCredentials
		}
		s.logger.Error("failed to resolve employee for authentication",
			"error", err)
		return "", wrapErr("authenticate", "employee", "", err)
	}

	if err := s.verifier.Compare(employee.HashedPassword, password); err != nil {
		s.logger.Debug("authentication attempt with wrong password",
			"employee_id", employee.ID)
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, employee.Email)
	if err != nil {
		s.logger.Error("failed to generate session token",
			"error", err,
			"employee_id", employee.ID)
		return "", wrapErr("authenticate", "employee", "", err)
	}

	s.logger.Info("employee authenticated successfully",
		"employee_id", employee.ID)
	return token, nil
}

// Save persists an already-resolved employee aggregate on behalf of the
// dependent services.
func (s *EmployeeServiceImpl) Save(ctx context.Context, employee *domain.Employee) error {
	if err := s.employeeStore.Save(ctx, employee); err != nil {
		s.logger.Error("failed to save employee aggregate",
			"error", err,
			"employee_id", employee.ID)
		return wrapErr("save", "employee", strconv.Itoa(employee.ID), err)
	}
	return nil
}
