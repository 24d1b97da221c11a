// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"recipebox/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserEmailTaken is returned when an insert collides with the unique email index.
	ErrUserEmailTaken = errors.New("user email already taken")
)

// UserRepository is the credential store.
type UserRepository interface {
	// FindByEmail retrieves a single user by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error
}
