package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/gobidev/ems-api/internal/domain"
	"github.com/gobidev/ems-api/internal/platform/logger"
	"github.com/gobidev/ems-api/internal/store"
)

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db *sql.DB, log *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: log.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// Create implements store.AccountStore.Create
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO accounts (account_number, bank_name, ifsc_code, is_deleted)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		account.AccountNumber,
		account.BankName,
		account.IFSCCode,
		account.IsDeleted,
	).Scan(&account.ID)

	if err != nil {
		log.Error("failed to create account",
			slog.String("error", err.Error()))
		return err
	}

	log.Info("account created successfully", slog.Int("account_id", account.ID))
	return nil
}

// Save implements store.AccountStore.Save
func (s *PostgresAccountStore) Save(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE accounts
		SET account_number = $1, bank_name = $2, ifsc_code = $3, is_deleted = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		account.AccountNumber,
		account.BankName,
		account.IFSCCode,
		account.IsDeleted,
		account.ID,
	)
	if err != nil {
		log.Error("failed to save account",
			slog.String("error", err.Error()),
			slog.Int("account_id", account.ID))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Debug("account not found for save", slog.Int("account_id", account.ID))
		return store.ErrAccountNotFound
	}

	log.Info("account saved successfully", slog.Int("account_id", account.ID))
	return nil
}
