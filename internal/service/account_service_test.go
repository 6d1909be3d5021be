package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gobidev/ems-api/internal/domain"
	"github.com/gobidev/ems-api/internal/store"
)

func TestAccountService_AddAccount(t *testing.T) {
	t.Run("creates and attaches an account", func(t *testing.T) {
		mockAccounts := new(MockAccountStore)
		mockEmployees := new(MockEmployeeService)

		mockEmployees.On("GetByID", mock.Anything, 4).Return(&domain.Employee{ID: 4}, nil)
		mockAccounts.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
			return a.AccountNumber == "111222333"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Account).ID = 11
		}).Return(nil)
		mockEmployees.On("Save", mock.Anything, mock.MatchedBy(func(e *domain.Employee) bool {
			return e.Account != nil && e.Account.ID == 11
		})).Return(nil)

		svc := NewAccountService(mockAccounts, mockEmployees, testLogger())

		account, err := svc.AddAccount(context.Background(), 4, &domain.Account{
			AccountNumber: "111222333",
			BankName:      "First National",
		})

		require.NoError(t, err)
		assert.Equal(t, 11, account.ID)
		mockAccounts.AssertExpectations(t)
		mockEmployees.AssertExpectations(t)
	})

	t.Run("second account for the same employee conflicts", func(t *testing.T) {
		mockEmployees := new(MockEmployeeService)
		mockEmployees.On("GetByID", mock.Anything, 4).Return(&domain.Employee{
			ID:      4,
			Account: &domain.Account{ID: 11, AccountNumber: "111222333"},
		}, nil)

		svc := NewAccountService(new(MockAccountStore), mockEmployees, testLogger())

		_, err := svc.AddAccount(context.Background(), 4, &domain.Account{
			AccountNumber: "444555666",
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrAccountExists))
		assert.True(t, errors.Is(err, store.ErrDuplicate))
	})

	t.Run("a soft-deleted account does not block a new one", func(t *testing.T) {
		mockAccounts := new(MockAccountStore)
		mockEmployees := new(MockEmployeeService)

		mockEmployees.On("GetByID", mock.Anything, 4).Return(&domain.Employee{
			ID:      4,
			Account: &domain.Account{ID: 11, IsDeleted: true},
		}, nil)
		mockAccounts.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Account).ID = 12
			}).Return(nil)
		mockEmployees.On("Save", mock.Anything, mock.Anything).Return(nil)

		svc := NewAccountService(mockAccounts, mockEmployees, testLogger())

		account, err := svc.AddAccount(context.Background(), 4, &domain.Account{
			AccountNumber: "444555666",
		})

		require.NoError(t, err)
		assert.Equal(t, 12, account.ID)
	})

	t.Run("empty account number fails validation", func(t *testing.T) {
		svc := NewAccountService(new(MockAccountStore), new(MockEmployeeService), testLogger())

		_, err := svc.AddAccount(context.Background(), 4, &domain.Account{})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})
}

func TestAccountService_GetEmployeeAccount(t *testing.T) {
	t.Run("returns the active account", func(t *testing.T) {
		mockEmployees := new(MockEmployeeService)
		mockEmployees.On("GetByID", mock.Anything, 4).Return(&domain.Employee{
			ID:      4,
			Account: &domain.Account{ID: 11, AccountNumber: "111222333"},
		}, nil)

		svc := NewAccountService(new(MockAccountStore), mockEmployees, testLogger())

		account, err := svc.GetEmployeeAccount(context.Background(), 4)

		require.NoError(t, err)
		assert.Equal(t, "111222333", account.AccountNumber)
	})

	t.Run("no account is not found", func(t *testing.T) {
		mockEmployees := new(MockEmployeeService)
		mockEmployees.On("GetByID", mock.Anything, 4).
			Return(&domain.Employee{ID: 4}, nil)

		svc := NewAccountService(new(MockAccountStore), mockEmployees, testLogger())

		_, err := svc.GetEmployeeAccount(context.Background(), 4)

		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrAccountNotFound))
	})

	t.Run("a soft-deleted account is treated as absent", func(t *testing.T) {
		mockEmployees := new(MockEmployeeService)
		mockEmployees.On("GetByID", mock.Anything, 4).Return(&domain.Employee{
			ID:      4,
			Account: &domain.Account{ID: 11, IsDeleted: true},
		}, nil)

		svc := NewAccountService(new(MockAccountStore), mockEmployees, testLogger())

		_, err := svc.GetEmployeeAccount(context.Background(), 4)

		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrAccountNotFound))
	})
}

func TestAccountService_UpdateAccount(t *testing.T) {
	t.Run("overwrites the attached account", func(t *testing.T) {
		mockAccounts := new(MockAccountStore)
		mockEmployees := new(MockEmployeeService)

		employee := &domain.Employee{
			ID:      4,
			Account: &domain.Account{ID: 11, AccountNumber: "111222333"},
		}
		mockEmployees.On("GetByID", mock.Anything, 4).Return(employee, nil)
		mockAccounts.On("Save", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
			return a.ID == 11 && a.AccountNumber == "444555666"
		})).Return(nil)
		mockEmployees.On("Save", mock.Anything, mock.Anything).Return(nil)

		svc := NewAccountService(mockAccounts, mockEmployees, testLogger())

		account, err := svc.UpdateAccount(context.Background(), 4, &domain.Account{
			AccountNumber: "444555666",
			BankName:      "Second National",
		})

		require.NoError(t, err)
		assert.Equal(t, 11, account.ID)
		assert.Equal(t, "444555666", account.AccountNumber)
		mockAccounts.AssertExpectations(t)
	})

	t.Run("no account to update is not found", func(t *testing.T) {
		mockEmployees := new(MockEmployeeService)
		mockEmployees.On("GetByID", mock.Anything, 4).
			Return(&domain.Employee{ID: 4}, nil)

		svc := NewAccountService(new(MockAccountStore), mockEmployees, testLogger())

		_, err := svc.UpdateAccount(context.Background(), 4, &domain.Account{
			AccountNumber: "444555666",
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrAccountNotFound))
	})
}

func TestAccountService_RemoveAccount(t *testing.T) {
	t.Run("soft-deletes the attached account", func(t *testing.T) {
		mockAccounts := new(MockAccountStore)
		mockEmployees := new(MockEmployeeService)

		employee := &domain.Employee{
			ID:      4,
			Account: &domain.Account{ID: 11, AccountNumber: "111222333"},
		}
		mockEmployees.On("GetByID", mock.Anything, 4).Return(employee, nil)
		mockAccounts.On("Save", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
			return a.ID == 11 && a.IsDeleted
		})).Return(nil)
		mockEmployees.On("Save", mock.Anything, mock.Anything).Return(nil)

		svc := NewAccountService(mockAccounts, mockEmployees, testLogger())

		err := svc.RemoveAccount(context.Background(), 4)

		require.NoError(t, err)
		mockAccounts.AssertExpectations(t)
		mockEmployees.AssertExpectations(t)
	})

	t.Run("second removal is not found", func(t *testing.T) {
		mockEmployees := new(MockEmployeeService)
		mockEmployees.On("GetByID", mock.Anything, 4).Return(&domain.Employee{
			ID:      4,
			Account: &domain.Account{ID: 11, IsDeleted: true},
		}, nil)

		svc := NewAccountService(new(MockAccountStore), mockEmployees, testLogger())

		err := svc.RemoveAccount(context.Background(), 4)

		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrAccountNotFound))
	})
}
