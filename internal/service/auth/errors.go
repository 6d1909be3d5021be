package auth

import "errors"

// Sentinel errors for token validation failures. The API layer maps all of
// them to 401 Unauthorized without distinguishing the cause to the caller.
var (
	// ErrInvalidToken is returned when a token fails signature or structural
	// validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token is syntactically valid but past
	// its expiry.
	ErrExpiredToken = errors.New("token expired")
)
