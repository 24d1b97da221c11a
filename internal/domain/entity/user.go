// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can log in and own saved recipes.
type User struct {
	ID           int64     `json:"id"`        // Database-assigned identifier, carried in issued tokens.
	Email        string    `json:"email"`     // Login identifier, unique across users.
	PasswordHash string    `json:"-"`         // bcrypt hash; never serialized to clients.
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updatedAt"` // Timestamp of the last modification to this account.
}
