package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gobidev/ems-api/internal/domain"
	"github.com/gobidev/ems-api/internal/platform/logger"
	"github.com/gobidev/ems-api/internal/store"
)

// PostgresRoleStore implements the store.RoleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresRoleStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresRoleStore creates a new PostgreSQL implementation of the
// RoleStore interface. If logger is nil, a default logger will be used.
func NewPostgresRoleStore(db *sql.DB, log *slog.Logger) *PostgresRoleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresRoleStore{
		db:     db,
		logger: log.With(slog.String("component", "role_store")),
	}
}

// Ensure PostgresRoleStore implements store.RoleStore interface
var _ store.RoleStore = (*PostgresRoleStore)(nil)

// Create implements store.RoleStore.Create
func (s *PostgresRoleStore) Create(ctx context.Context, role *domain.Role) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := role.Validate(); err != nil {
		log.Warn("role validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO roles (designation, department, is_deleted)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		role.Designation,
		role.Department,
		role.IsDeleted,
	).Scan(&role.ID)

	if err != nil {
		log.Error("failed to create role",
			slog.String("error", err.Error()),
			slog.String("designation", role.Designation))
		return err
	}

	log.Info("role created successfully", slog.Int("role_id", role.ID))
	return nil
}

// GetByID implements store.RoleStore.GetByID
func (s *PostgresRoleStore) GetByID(ctx context.Context, id int) (*domain.Role, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, designation, department, is_deleted
		FROM roles
		WHERE id = $1 AND is_deleted = false
	`

	var role domain.Role
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&role.ID,
		&role.Designation,
		&role.Department,
		&role.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("role not found", slog.Int("role_id", id))
			return nil, store.ErrRoleNotFound
		}
		log.Error("failed to get role by ID",
			slog.String("error", err.Error()),
			slog.Int("role_id", id))
		return nil, err
	}

	return &role, nil
}

// FindByDesignationAndDepartment implements
// store.RoleStore.FindByDesignationAndDepartment
func (s *PostgresRoleStore) FindByDesignationAndDepartment(
	ctx context.Context,
	designation, department string,
) (*domain.Role, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, designation, department, is_deleted
		FROM roles
		WHERE designation = $1 AND department = $2 AND is_deleted = false
		ORDER BY id
		LIMIT 1
	`

	var role domain.Role
	err := s.db.QueryRowContext(ctx, query, designation, department).Scan(
		&role.ID,
		&role.Designation,
		&role.Department,
		&role.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no role for designation and department",
				slog.String("designation", designation),
				slog.String("department", department))
			return nil, store.ErrRoleNotFound
		}
		log.Error("failed to find role",
			slog.String("error", err.Error()),
			slog.String("designation", designation))
		return nil, err
	}

	return &role, nil
}

// Save implements store.RoleStore.Save
func (s *PostgresRoleStore) Save(ctx context.Context, role *domain.Role) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE roles
		SET designation = $1, department = $2, is_deleted = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		role.Designation,
		role.Department,
		role.IsDeleted,
		role.ID,
	)
	if err != nil {
		log.Error("failed to save role",
			slog.String("error", err.Error()),
			slog.Int("role_id", role.ID))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Debug("role not found for save", slog.Int("role_id", role.ID))
		return store.ErrRoleNotFound
	}

	log.Info("role saved successfully", slog.Int("role_id", role.ID))
	return nil
}
