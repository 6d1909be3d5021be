package api

import (
	"time"

	"github.com/gobidev/ems-api/internal/domain"
)

// dobFormat is the wire format for dates of birth.
const dobFormat = "2006-01-02"

// RegisterRequest represents the employee registration request payload.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the response for successful authentication.
type AuthResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// EmployeeRequest represents the add-details and update request payload.
// The password never travels through this request; it is set at registration.
type EmployeeRequest struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"name"          validate:"required"`
	DOB          string `json:"dob"           validate:"omitempty,datetime=2006-01-02"`
	MobileNumber string `json:"mobile_number" validate:"omitempty,e164"`
	Email        string `json:"email"         validate:"required,email"`
	Type         string `json:"type"          validate:"omitempty,oneof=EMPLOYEE ADMIN"`
}

// RoleRequest represents the add/update role request payload.
type RoleRequest struct {
	Designation string `json:"designation" validate:"required"`
	Department  string `json:"department"`
}

// SkillRequest represents the add/update skill request payload.
type SkillRequest struct {
	ID        int    `json:"id,omitempty"`
	Name      string `json:"name" validate:"required"`
	Category  string `json:"category"`
	Institute string `json:"institute"`
}

// AccountRequest represents the add/update account request payload.
type AccountRequest struct {
	AccountNumber string `json:"account_number" validate:"required"`
	BankName      string `json:"bank_name"`
	IFSCCode      string `json:"ifsc_code"`
}

// EmployeeResponse is the outward representation of an employee. It never
// carries the password credential in any form.
type EmployeeResponse struct {
	ID           int               `json:"id"`
	UUID         string            `json:"uuid,omitempty"`
	Name         string            `json:"name,omitempty"`
	DOB          string            `json:"dob,omitempty"`
	MobileNumber string            `json:"mobile_number,omitempty"`
	Email        string            `json:"email"`
	Type         string            `json:"type,omitempty"`
	Role         *RoleResponse     `json:"role,omitempty"`
	Account      *AccountResponse  `json:"account,omitempty"`
	Skills       []*SkillResponse  `json:"skills,omitempty"`
}

// RoleResponse is the outward representation of a role.
type RoleResponse struct {
	ID          int    `json:"id"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
}

// SkillResponse is the outward representation of a skill.
type SkillResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Institute string `json:"institute"`
}

// AccountResponse is the outward representation of an account.
type AccountResponse struct {
	ID            int    `json:"id"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	IFSCCode      string `json:"ifsc_code"`
}

// NewEmployeeResponse maps a domain employee to its outward representation.
func NewEmployeeResponse(e *domain.Employee) *EmployeeResponse {
	resp := &EmployeeResponse{
		ID:           e.ID,
		UUID:         e.UUID,
		Name:         e.Name,
		MobileNumber: e.MobileNumber,
		Email:        e.Email,
		Type:         string(e.Type),
	}
	if !e.DOB.IsZero() {
		resp.DOB = e.DOB.Format(dobFormat)
	}
	if e.Role != nil && !e.Role.IsDeleted {
		resp.Role = NewRoleResponse(e.Role)
	}
	if e.Account != nil && !e.Account.IsDeleted {
		resp.Account = NewAccountResponse(e.Account)
	}
	for _, skill := range e.Skills {
		resp.Skills = append(resp.Skills, NewSkillResponse(skill))
	}
	return resp
}

// NewRoleResponse maps a domain role to its outward representation.
func NewRoleResponse(r *domain.Role) *RoleResponse {
	return &RoleResponse{
		ID:          r.ID,
		Designation: r.Designation,
		Department:  r.Department,
	}
}

// NewSkillResponse maps a domain skill to its outward representation.
func NewSkillResponse(s *domain.Skill) *SkillResponse {
	return &SkillResponse{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category,
		Institute: s.Institute,
	}
}

// NewAccountResponse maps a domain account to its outward representation.
func NewAccountResponse(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		BankName:      a.BankName,
		IFSCCode:      a.IFSCCode,
	}
}

// toEmployeeDraft converts an EmployeeRequest into a domain draft.
func (req *EmployeeRequest) toEmployeeDraft() (*domain.Employee, error) {
	draft := &domain.Employee{
		ID:           req.ID,
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Type:         domain.EmployeeType(req.Type),
	}
	if req.DOB != "" {
		dob, err := time.Parse(dobFormat, req.DOB)
		if err != nil {
			return nil, err
		}
		draft.DOB = dob
	}
	return draft, nil
}
