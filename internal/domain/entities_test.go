package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Validate(t *testing.T) {
	assert.NoError(t, (&Role{Designation: "Engineer"}).Validate())
	assert.ErrorIs(t, (&Role{Department: "Platform"}).Validate(), ErrEmptyDesignation)
}

func TestRole_Matches(t *testing.T) {
	role := &Role{Designation: "Engineer", Department: "Platform"}

	assert.True(t, role.Matches("Engineer", "Platform"))
	assert.False(t, role.Matches("Engineer", "Sales"))
	assert.False(t, role.Matches("Manager", "Platform"))
}

func TestSkill_Validate(t *testing.T) {
	assert.NoError(t, (&Skill{Name: "Go"}).Validate())
	assert.ErrorIs(t, (&Skill{Category: "Language"}).Validate(), ErrEmptySkillName)
}

func TestAccount_Validate(t *testing.T) {
	assert.NoError(t, (&Account{AccountNumber: "111222333"}).Validate())
	assert.ErrorIs(t, (&Account{BankName: "First National"}).Validate(), ErrEmptyAccountNumber)
}
