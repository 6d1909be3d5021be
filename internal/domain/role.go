package domain

// Role describes an employee's position. Roles are deduplicated on the
// (designation, department) pair: updating an employee to a pair that already
// exists reattaches the existing row instead of creating a new one.
type Role struct {
	ID          int    `json:"id"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	IsDeleted   bool   `json:"-"`
}

// Validate checks the role's required fields.
func (r *Role) Validate() error {
	if r.Designation == "" {
		return ErrEmptyDesignation
	}
	return nil
}

// Matches reports whether the role has the given designation and department.
func (r *Role) Matches(designation, department string) bool {
	return r.Designation == designation && r.Department == department
}
