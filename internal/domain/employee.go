package domain

import (
	"strings"
	"time"
)

// EmployeeType classifies an employee record.
type EmployeeType string

// Known employee classifications.
const (
	TypeEmployee EmployeeType = "EMPLOYEE"
	TypeAdmin    EmployeeType = "ADMIN"
)

// IsValid reports whether t is one of the known classifications.
func (t EmployeeType) IsValid() bool {
	return t == TypeEmployee || t == TypeAdmin
}

// Employee is the aggregate root of the employee-records domain. It owns at
// most one Account and one Role, and holds non-owning references into the
// shared Skill catalog.
//
// Password carries a plaintext credential only transiently during
// registration or a password change; HashedPassword is what gets stored.
// Neither is ever serialized outward.
type Employee struct {
	ID             int          `json:"id"`
	UUID           string       `json:"uuid"`
	Name           string       `json:"name"`
	DOB            time.Time    `json:"dob"`
	MobileNumber   string       `json:"mobile_number"`
	Email          string       `json:"email"`
	Password       string       `json:"-"`
	HashedPassword string       `json:"-"`
	Type           EmployeeType `json:"type"`
	IsDeleted      bool         `json:"-"`
	Role           *Role        `json:"role,omitempty"`
	Account        *Account     `json:"account,omitempty"`
	Skills         []*Skill     `json:"skills,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// NewEmployee creates an employee carrying only the registration fields:
// email and a plaintext password. The caller is responsible for hashing the
// password before the employee is stored. Returns an error if validation fails.
func NewEmployee(email, password string) (*Employee, error) {
	e := &Employee{
		Email:     email,
		Password:  password,
		Type:      TypeEmployee,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate checks the employee's credential and identity fields.
// Returns a domain sentinel error on the first failed check.
func (e *Employee) Validate() error {
	if e.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(e.Email) {
		return ErrInvalidEmail
	}

	if e.Password != "" {
		if len(e.Password) < 8 {
			return ErrPasswordTooShort
		}
		if len(e.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if e.HashedPassword == "" {
		// Existing rows loaded from the store always carry a hash.
		return ErrEmptyPassword
	}

	if e.Type != "" && !e.Type.IsValid() {
		return ErrInvalidEmployeeType
	}

	return nil
}

// HasActiveAccount reports whether the employee owns an account that has not
// been soft-deleted.
func (e *Employee) HasActiveAccount() bool {
	return e.Account != nil && !e.Account.IsDeleted
}

// validEmailFormat performs a minimal structural check: a local part, an @,
// and a domain containing an interior dot.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domainPart := email[at+1:]
	dot := strings.Index(domainPart, ".")
	return dot > 0 && dot < len(domainPart)-1
}
