// Package auth provides the credential and token collaborators of the domain
// layer: bcrypt password hashing/verification and JWT session token issuance.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the validated claims extracted from a session token.
type Claims struct {
	// Email identifies the authenticated employee.
	Email string `json:"sub_email"`
	jwt.RegisteredClaims
}

// JWTService issues and validates session tokens for authenticated
// identities. The token is opaque to every other layer; only the middleware
// and this package look inside it.
type JWTService interface {
	// GenerateToken creates a signed session token for the given email.
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken verifies a session token and returns its claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
