package service

import (
	"refill/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the identity payload embedded in a session token.
type Claims struct {
	Email  string
	UserID uuid.UUID
}

// TokenService defines the interface for issuing and verifying session tokens.
// Tokens are bearer-style, signed, and expire on their own; there is no
// server-side revocation.
type TokenService interface {
	// Issue creates a signed session token for the given user.
	Issue(user *entity.User) (string, error)

	// Verify checks the token's signature and expiry and returns its claims.
	Verify(tokenString string) (*Claims, error)
}
