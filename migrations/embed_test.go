package migrations

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()
	data, err := Files.ReadFile(name)
	require.NoError(t, err, "migration %s must be embedded", name)
	return string(data)
}

// columnDef extracts the full definition line for a column in a CREATE TABLE
// statement.
func columnDef(t *testing.T, ddl, column string) string {
	t.Helper()
	re := regexp.MustCompile(`(?m)^\s*` + column + `\s+(.+?),?\s*$`)
	match := re.FindStringSubmatch(ddl)
	require.NotNil(t, match, "column %s must be declared", column)
	return match[1]
}

func TestMigrationsCarryGooseMarkers(t *testing.T) {
	entries, err := Files.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		ddl := readMigration(t, entry.Name())
		assert.Contains(t, ddl, "-- +goose Up", entry.Name())
		assert.Contains(t, ddl, "-- +goose Down", entry.Name())
	}
}

// The employee store writes unset profile fields as SQL NULL, and a
// registration-stage row has only email and credential set. The schema must
// accept NULL for every column the store can leave unset, or registration
// fails with a not-null violation (an explicit NULL bypasses column defaults).
func TestEmployeesSchemaAcceptsRegistrationStageRow(t *testing.T) {
	ddl := readMigration(t, "20240101000004_create_employees.sql")

	nullable := []string{"uuid", "name", "dob", "mobile_number"}
	for _, column := range nullable {
		def := columnDef(t, ddl, column)
		assert.NotContains(t, def, "NOT NULL",
			"column %s is written as NULL before AddDetails", column)
	}

	required := []string{"email", "hashed_password", "type", "is_deleted"}
	for _, column := range required {
		def := columnDef(t, ddl, column)
		assert.Contains(t, def, "NOT NULL", "column %s is always supplied", column)
	}
}

// Uniqueness applies to active rows only, for both employee emails and skill
// names. Both are enforced by partial unique indexes.
func TestActiveOnlyUniqueIndexes(t *testing.T) {
	employees := readMigration(t, "20240101000004_create_employees.sql")
	assert.Contains(t, employees, "CREATE UNIQUE INDEX idx_employees_email_active")
	assert.Contains(t, employees, "WHERE is_deleted = FALSE")

	skills := readMigration(t, "20240101000003_create_skills.sql")
	assert.Contains(t, skills, "CREATE UNIQUE INDEX idx_skills_name_active")
	assert.Contains(t, skills, "WHERE is_deleted = FALSE")
}
