package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobidev/ems-api/internal/domain"
	"github.com/gobidev/ems-api/internal/service"
	"github.com/gobidev/ems-api/internal/service/auth"
	"github.com/gobidev/ems-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"not owned", service.ErrNotOwned, http.StatusForbidden},
		{"employee not found", store.ErrEmployeeNotFound, http.StatusNotFound},
		{"role not found", store.ErrRoleNotFound, http.StatusNotFound},
		{"skill not found", store.ErrSkillNotFound, http.StatusNotFound},
		{"account not found", store.ErrAccountNotFound, http.StatusNotFound},
		{"no skills", service.ErrNoSkills, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"skill name exists", store.ErrSkillNameExists, http.StatusConflict},
		{"account exists", service.ErrAccountExists, http.StatusConflict},
		{"validation failure", domain.ErrValidation, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{
			"wrapped service error keeps its kind",
			&service.ServiceError{Op: "get", Entity: "employee", Err: store.ErrEmployeeNotFound},
			http.StatusNotFound,
		},
		{
			"wrapped validation error keeps its kind",
			fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrEmptyDesignation),
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Run("known kinds get specific messages", func(t *testing.T) {
		assert.Equal(t, "Invalid email or password",
			GetSafeErrorMessage(service.ErrInvalidCredentials))
		assert.Equal(t, "Employee not found",
			GetSafeErrorMessage(store.ErrEmployeeNotFound))
		assert.Equal(t, "Email already exists",
			GetSafeErrorMessage(store.ErrEmailExists))
		assert.Equal(t, "Employee already has an account",
			GetSafeErrorMessage(service.ErrAccountExists))
		assert.Equal(t, "Skill name already exists",
			GetSafeErrorMessage(store.ErrSkillNameExists))
	})

	t.Run("internal details never leak", func(t *testing.T) {
		internal := errors.New("pq: password authentication failed for user postgres")
		msg := GetSafeErrorMessage(internal)

		assert.Equal(t, "An unexpected error occurred", msg)
		assert.NotContains(t, msg, "postgres")
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	})
}
