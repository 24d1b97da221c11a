package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the user id plus issued-at and expiry.
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited identity tokens.
type TokenService interface {
	// GenerateToken signs a token for userID that expires after the service TTL.
	GenerateToken(userID int64) (string, error)

	// ValidateToken returns the claims of a well-formed, correctly signed, unexpired token.
	// Every failure maps to the same error so callers cannot tell expiry from tampering.
	ValidateToken(tokenString string) (*Claims, error)
}
