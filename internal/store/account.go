package store

import (
	"context"

	"github.com/gobidev/ems-api/internal/domain"
)

// AccountStore defines the persistence gateway for employee bank accounts.
// Accounts are always reached through their owning employee; the store only
// needs creation and overwrite.
type AccountStore interface {
	// Create saves a new account and fills in its generated id.
	Create(ctx context.Context, account *domain.Account) error

	// Save overwrites an existing account's fields, including the
	// soft-delete flag. Returns ErrAccountNotFound if the row does not exist.
	Save(ctx context.Context, account *domain.Account) error
}
