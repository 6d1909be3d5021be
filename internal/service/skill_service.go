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

// SkillService manages the shared skill catalog and each employee's skill
// references. Skill names are the natural key: adding a name that already
// exists in the catalog attaches the existing row.
type SkillService interface {
	// AddSkill attaches a skill to the employee, reusing the catalog entry
	// with the draft's name when one exists (the rest of the draft is then
	// ignored) and creating a new entry otherwise.
	AddSkill(ctx context.Context, draft *domain.Skill, employeeID int) (*domain.Skill, error)

	// GetEmployeeSkills returns the employee's skill list, empty if none.
	GetEmployeeSkills(ctx context.Context, employeeID int) ([]*domain.Skill, error)

	// UpdateSkill overwrites the catalog entry matching the draft's id.
	// Returns store.ErrSkillNotFound if absent and store.ErrSkillNameExists
	// when a rename collides with another active catalog name.
	UpdateSkill(ctx context.Context, draft *domain.Skill) (*domain.Skill, error)

	// DeleteSkills clears the employee's entire skill list.
	// Returns ErrNoSkills if the list is empty or absent.
	DeleteSkills(ctx context.Context, employeeID int) error

	// DeleteSkill removes from the employee's list every skill sharing the
	// target's name, not just the matching id.
	DeleteSkill(ctx context.Context, skillID, employeeID int) error
}

// SkillServiceImpl implements the SkillService interface.
type SkillServiceImpl struct {
	skillStore store.SkillStore
	employees  EmployeeService
	logger     *slog.Logger
}

// Ensure SkillServiceImpl implements SkillService interface
var _ SkillService = (*SkillServiceImpl)(nil)

// NewSkillService creates a new SkillService.
func NewSkillService(
	skillStore store.SkillStore,
	employees EmployeeService,
	logger *slog.Logger,
) *SkillServiceImpl {
	return &SkillServiceImpl{
		skillStore: skillStore,
		employees:  employees,
		logger:     logger.With("component", "skill_service"),
	}
}

// AddSkill attaches a catalog skill to the employee, deduplicating by name.
func (s *SkillServiceImpl) AddSkill(
	ctx context.Context,
	draft *domain.Skill,
	employeeID int,
) (*domain.Skill, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	skill, err := s.skillStore.GetByName(ctx, draft.Name)
	switch {
	case err == nil:
		s.logger.Debug("reusing catalog skill",
			"skill_id", skill.ID,
			"name", skill.Name)
	case errors.Is(err, store.ErrSkillNotFound):
		skill = &domain.Skill{
			Name:      draft.Name,
			Category:  draft.Category,
			Institute: draft.Institute,
		}
		if err := s.skillStore.Create(ctx, skill); err != nil {
			s.logger.Error("failed to create skill",
				"error", err,
				"name", draft.Name)
			return nil, wrapErr("add", "skill", draft.Name, err)
		}
	default:
		s.logger.Error("failed to look up skill by name",
			"error", err,
			"name", draft.Name)
		return nil, wrapErr("add", "skill", draft.Name, err)
	}

	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	employee.Skills = append(employee.Skills, skill)
	if err := s.employees.Save(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info("skill added to employee",
		"skill_id", skill.ID,
		"employee_id", employeeID)
	return skill, nil
}

// GetEmployeeSkills returns the employee's skill list.
func (s *SkillServiceImpl) GetEmployeeSkills(
	ctx context.Context,
	employeeID int,
) ([]*domain.Skill, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if employee.Skills == nil {
		return []*domain.Skill{}, nil
	}
	return employee.Skills, nil
}

// UpdateSkill overwrites the catalog entry matching the draft's id.
func (s *SkillServiceImpl) UpdateSkill(
	ctx context.Context,
	draft *domain.Skill,
) (*domain.Skill, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	skill, err := s.skillStore.GetByID(ctx, draft.ID)
	if err != nil {
		if errors.Is(err, store.ErrSkillNotFound) {
			s.logger.Debug("skill not found for update", "skill_id", draft.ID)
		} else {
			s.logger.Error("failed to retrieve skill",
				"error", err,
				"skill_id", draft.ID)
		}
		return nil, wrapErr("update", "skill", strconv.Itoa(draft.ID), err)
	}

	// Active names are unique in the catalog; reject a rename onto a taken
	// name before it hits the index.
	if draft.Name != skill.Name {
		taken, err := s.skillStore.ExistsByName(ctx, draft.Name)
		if err != nil {
			s.logger.Error("failed to check skill name availability",
				"error", err,
				"name", draft.Name)
			return nil, wrapErr("update", "skill", strconv.Itoa(draft.ID), err)
		}
		if taken {
			s.logger.Debug("skill rename collides with an existing catalog entry",
				"skill_id", draft.ID,
				"name", draft.Name)
			return nil, store.ErrSkillNameExists
		}
	}

	skill.Name = draft.Name
	skill.Category = draft.Category
	skill.Institute = draft.Institute

	if err := s.skillStore.Save(ctx, skill); err != nil {
		s.logger.Error("failed to save skill",
			"error", err,
			"skill_id", skill.ID)
		return nil, wrapErr("update", "skill", strconv.Itoa(skill.ID), err)
	}

	s.logger.Info("skill updated", "skill_id", skill.ID)
	return skill, nil
}

// DeleteSkills clears the employee's entire skill list.
func (s *SkillServiceImpl) DeleteSkills(ctx context.Context, employeeID int) error {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}

	if len(employee.Skills) == 0 {
		s.logger.Debug("employee has no skills to delete",
			"employee_id", employeeID)
		return ErrNoSkills
	}

	employee.Skills = nil
	if err := s.employees.Save(ctx, employee); err != nil {
		return err
	}

	s.logger.Info("skills cleared for employee", "employee_id", employeeID)
	return nil
}

// DeleteSkill removes every skill sharing the target's name from the
// employee's list. The filter is by name, not id: duplicate references with
// distinct ids but the same name all go.
func (s *SkillServiceImpl) DeleteSkill(ctx context.Context, skillID, employeeID int) error {
	skill, err := s.skillStore.GetByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, store.ErrSkillNotFound) {
			s.logger.Debug("skill not found for delete", "skill_id", skillID)
		} else {
			s.logger.Error("failed to retrieve skill",
				"error", err,
				"skill_id", skillID)
		}
		return wrapErr("delete", "skill", strconv.Itoa(skillID), err)
	}

	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}

	kept := employee.Skills[:0]
	for _, sk := range employee.Skills {
		if sk.Name != skill.Name {
			kept = append(kept, sk)
		}
	}
	employee.Skills = kept

	if err := s.employees.Save(ctx, employee); err != nil {
		return err
	}

	s.logger.Info("skill removed from employee",
		"skill_id", skillID,
		"employee_id", employeeID)
	return nil
}
