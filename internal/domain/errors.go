// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyEmail is returned when an employee email is missing.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyPassword is returned when neither a plaintext password nor a
	// stored hash is present on an employee.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordTooShort is returned when a plaintext password is below the
	// minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")

	// ErrPasswordTooLong is returned when a plaintext password exceeds
	// bcrypt's practical limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters long")

	// ErrInvalidEmployeeType is returned when the classification tag is not
	// one of the known values.
	ErrInvalidEmployeeType = errors.New("invalid employee type")

	// ErrEmptySkillName is returned when a skill is created without a name.
	ErrEmptySkillName = errors.New("skill name cannot be empty")

	// ErrEmptyDesignation is returned when a role is created without a designation.
	ErrEmptyDesignation = errors.New("role designation cannot be empty")

	// ErrEmptyAccountNumber is returned when an account is created without a number.
	ErrEmptyAccountNumber = errors.New("account number cannot be empty")
)
