package domain

// Skill is a shared catalog entry, keyed by name. Employees hold non-owning
// references to skills; adding a skill whose name already exists in the
// catalog attaches the existing row.
type Skill struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Institute string `json:"institute"`
	IsDeleted bool   `json:"-"`
}

// Validate checks the skill's required fields.
func (s *Skill) Validate() error {
	if s.Name == "" {
		return ErrEmptySkillName
	}
	return nil
}
