package auth

import (
	"golang.org/x/crypto/bcrypt"

	"recipebox/config"
	"recipebox/internal/domain/service"
	"recipebox/internal/errors"
)

// defaultBcryptCost matches the cost the service has always hashed with.
const defaultBcryptCost = 10

// maxPasswordBytes is the most bcrypt reads; longer inputs are cut to it.
const maxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// An unset or out-of-range cost falls back to defaultBcryptCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := defaultBcryptCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(truncatePassword(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password))
	// err is nil if the password and hash match.
	return err == nil
}

// truncatePassword keeps the first maxPasswordBytes bytes, so overlong
// passwords hash and verify instead of failing.
func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		return b[:maxPasswordBytes]
	}

	return b
}
