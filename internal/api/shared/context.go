package shared

import "context"

// ContextKey is the key type for context values set by the API layer.
type ContextKey string

// Context keys for various values
const (
	// EmployeeEmailContextKey is the context key under which the
	// authenticated employee's email travels.
	EmployeeEmailContextKey ContextKey = "employeeEmail"
)

// GetEmployeeEmail retrieves the authenticated employee's email from the
// context. Returns an empty string and false if none is present.
func GetEmployeeEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmployeeEmailContextKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
