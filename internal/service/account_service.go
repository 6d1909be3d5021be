package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gobidev/ems-api/internal/domain"
	"github.com/gobidev/ems-api/internal/store"
)

// AccountService manages the bank account owned 1:1 by an employee. The
// owning employee is always resolved through the EmployeeService.
type AccountService interface {
	// AddAccount persists a new account from the draft and attaches it to the
	// employee. Returns ErrAccountExists if the employee already has an
	// active account.
	AddAccount(ctx context.Context, employeeID int, draft *domain.Account) (*domain.Account, error)

	// GetEmployeeAccount returns the employee's active account.
	// Returns store.ErrAccountNotFound if none is attached.
	GetEmployeeAccount(ctx context.Context, employeeID int) (*domain.Account, error)

	// UpdateAccount overwrites the attached account's fields.
	// Returns store.ErrAccountNotFound if the employee has no account.
	UpdateAccount(ctx context.Context, employeeID int, draft *domain.Account) (*domain.Account, error)

	// RemoveAccount soft-deletes the attached account. The account row is
	// saved before the employee.
	RemoveAccount(ctx context.Context, employeeID int) error
}

// AccountServiceImpl implements the AccountService interface.
type AccountServiceImpl struct {
	accountStore store.AccountStore
	employees    EmployeeService
	logger       *slog.Logger
}

// Ensure AccountServiceImpl implements AccountService interface
var _ AccountService = (*AccountServiceImpl)(nil)

// NewAccountService creates a new AccountService.
func NewAccountService(
	accountStore store.AccountStore,
	employees EmployeeService,
	logger *slog.Logger,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		accountStore: accountStore,
		employees:    employees,
		logger:       logger.With("component", "account_service"),
	}
}

// AddAccount persists a new account and attaches it to the employee.
func (s *AccountServiceImpl) AddAccount(
	ctx context.Context,
	employeeID int,
	draft *domain.Account,
) (*domain.Account, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if employee.HasActiveAccount() {
		s.logger.Debug("employee already has an account",
			"employee_id", employeeID,
			"account_id", employee.Account.ID)
		return nil, ErrAccountExists
	}

	account := &domain.Account{
		AccountNumber: draft.AccountNumber,
		BankName:      draft.BankName,
		IFSCCode:      draft.IFSCCode,
	}
	if err := s.accountStore.Create(ctx, account); err != nil {
		s.logger.Error("failed to create account",
			"error", err,
			"employee_id", employeeID)
		return nil, wrapErr("add", "account", "", err)
	}

	employee.Account = account
	if err := s.employees.Save(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info("account added",
		"account_id", account.ID,
		"employee_id", employeeID)
	return account, nil
}

// GetEmployeeAccount returns the employee's active account.
func (s *AccountServiceImpl) GetEmployeeAccount(
	ctx context.Context,
	employeeID int,
) (*domain.Account, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if !employee.HasActiveAccount() {
		s.logger.Debug("employee has no account", "employee_id", employeeID)
		return nil, store.ErrAccountNotFound
	}

	return employee.Account, nil
}

// UpdateAccount overwrites the attached account's fields. The account row is
// saved first, then the employee.
func (s *AccountServiceImpl) UpdateAccount(
	ctx context.Context,
	employeeID int,
	draft *domain.Account,
) (*domain.Account, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	account := employee.Account
	if account == nil {
		s.logger.Debug("employee has no account to update",
			"employee_id", employeeID)
		return nil, store.ErrAccountNotFound
	}

	account.AccountNumber = draft.AccountNumber
	account.BankName = draft.BankName
	account.IFSCCode = draft.IFSCCode

	if err := s.accountStore.Save(ctx, account); err != nil {
		s.logger.Error("failed to save account",
			"error", err,
			"account_id", account.ID)
		return nil, wrapErr("update", "account", strconv.Itoa(account.ID), err)
	}
	if err := s.employees.Save(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info("account updated",
		"account_id", account.ID,
		"employee_id", employeeID)
	return account, nil
}

// RemoveAccount soft-deletes the attached account, account row before
// employee row.
func (s *AccountServiceImpl) RemoveAccount(ctx context.Context, employeeID int) error {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}

	account := employee.Account
	if account == nil || account.IsDeleted {
		s.logger.Debug("employee has no account to remove",
			"employee_id", employeeID)
		return store.ErrAccountNotFound
	}

	account.IsDeleted = true

	if err := s.accountStore.Save(ctx, account); err != nil {
		s.logger.Error("failed to soft-delete account",
			"error", err,
			"account_id", account.ID)
		return wrapErr("remove", "account", strconv.Itoa(account.ID), err)
	}
	if err := s.employees.Save(ctx, employee); err != nil {
		return err
	}

	s.logger.Info("account removed",
		"account_id", account.ID,
		"employee_id", employeeID)
	return nil
}
