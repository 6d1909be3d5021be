package store

import (
	"context"

	"github.com/gobidev/ems-api/internal/domain"
)

// SkillStore defines the persistence gateway for the shared skill catalog.
// Skill names act as the natural key for catalog reuse.
type SkillStore interface {
	// Create saves a new skill and fills in its generated id.
	Create(ctx context.Context, skill *domain.Skill) error

	// GetByID retrieves an active skill by id.
	// Returns ErrSkillNotFound if the skill does not exist or is soft-deleted.
	GetByID(ctx context.Context, id int) (*domain.Skill, error)

	// GetByName retrieves the active catalog entry with the given name.
	// Returns ErrSkillNotFound if no such skill exists.
	GetByName(ctx context.Context, name string) (*domain.Skill, error)

	// ExistsByName reports whether an active skill with the given name exists
	// in the catalog.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Save overwrites an existing skill's fields.
	// Returns ErrSkillNotFound if the row does not exist.
	Save(ctx context.Context, skill *domain.Skill) error
}
