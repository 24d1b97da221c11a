// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"recipebox/config"
	"recipebox/internal/domain/service"
	"recipebox/internal/errors"
)

// tokenTTL is how long an issued token stays valid.
const tokenTTL = time.Hour

// ErrInvalidToken is returned for every token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It refuses to start without a signing secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg.JWT.Secret, tokenTTL, time.Now)
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

// GenerateToken creates a signed token carrying userID.
func (s *jwtService) GenerateToken(userID int64) (string, error) {
	issuedAt := s.now()
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// ValidateToken verifies signature, algorithm and expiry.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
