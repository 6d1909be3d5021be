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

// PostgresSkillStore implements the store.SkillStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSkillStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresSkillStore creates a new PostgreSQL implementation of the
// SkillStore interface. If logger is nil, a default logger will be used.
func NewPostgresSkillStore(db *sql.DB, log *slog.Logger) *PostgresSkillStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresSkillStore{
		db:     db,
		logger: log.With(slog.String("component", "skill_store")),
	}
}

// Ensure PostgresSkillStore implements store.SkillStore interface
var _ store.SkillStore = (*PostgresSkillStore)(nil)

// Create implements store.SkillStore.Create
func (s *PostgresSkillStore) Create(ctx context.Context, skill *domain.Skill) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := skill.Validate(); err != nil {
		log.Warn("skill validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO skills (name, category, institute, is_deleted)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		skill.Name,
		skill.Category,
		skill.Institute,
		skill.IsDeleted,
	).Scan(&skill.ID)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("duplicate skill name during create",
				slog.String("name", skill.Name))
			return fmt.Errorf("%w: skill name", store.ErrDuplicate)
		}
		log.Error("failed to create skill",
			slog.String("error", err.Error()),
			slog.String("name", skill.Name))
		return err
	}

	log.Info("skill created successfully",
		slog.Int("skill_id", skill.ID),
		slog.String("name", skill.Name))
	return nil
}

// GetByID implements store.SkillStore.GetByID
func (s *PostgresSkillStore) GetByID(ctx context.Context, id int) (*domain.Skill, error) {
	query := `
		SELECT id, name, category, institute, is_deleted
		FROM skills
		WHERE id = $1 AND is_deleted = false
	`
	return s.getOne(ctx, query, id)
}

// GetByName implements store.SkillStore.GetByName
func (s *PostgresSkillStore) GetByName(ctx context.Context, name string) (*domain.Skill, error) {
	query := `
		SELECT id, name, category, institute, is_deleted
		FROM skills
		WHERE name = $1 AND is_deleted = false
	`
	return s.getOne(ctx, query, name)
}

// ExistsByName implements store.SkillStore.ExistsByName
func (s *PostgresSkillStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM skills WHERE name = $1 AND is_deleted = false)`
	if err := s.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		log.Error("failed to check skill existence by name",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return false, err
	}
	return exists, nil
}

// Save implements store.SkillStore.Save
func (s *PostgresSkillStore) Save(ctx context.Context, skill *domain.Skill) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE skills
		SET name = $1, category = $2, institute = $3, is_deleted = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		skill.Name,
		skill.Category,
		skill.Institute,
		skill.IsDeleted,
		skill.ID,
	)
	if err != nil {
		log.Error("failed to save skill",
			slog.String("error", err.Error()),
			slog.Int("skill_id", skill.ID))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Debug("skill not found for save", slog.Int("skill_id", skill.ID))
		return store.ErrSkillNotFound
	}

	log.Info("skill saved successfully", slog.Int("skill_id", skill.ID))
	return nil
}

// getOne runs a single-row skill query.
func (s *PostgresSkillStore) getOne(
	ctx context.Context,
	query string,
	arg any,
) (*domain.Skill, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var skill domain.Skill
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&skill.ID,
		&skill.Name,
		&skill.Category,
		&skill.Institute,
		&skill.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("skill not found")
			return nil, store.ErrSkillNotFound
		}
		log.Error("failed to get skill", slog.String("error", err.Error()))
		return nil, err
	}

	return &skill, nil
}
