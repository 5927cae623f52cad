// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account of the app.
type User struct {
	ID           uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the user.
	Username     string    `json:"username"`  // Login name, unique.
	UserType     UserType  `json:"user_type"` // Coarse role of the account.
	PasswordHash string    `json:"-"`         // bcrypt hash, never serialized.
	IsActive     bool      `json:"is_active"` // Inactive users cannot log in.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Record converts u to the row image carried by change events. The password hash is left out.
func (u *User) Record() Record {
	return Record{
		"id":         u.ID.String(),
		"username":   u.Username,
		"user_type":  u.UserType.String(),
		"is_active":  u.IsActive,
		"created_at": u.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// UserUpdate carries the fields to change. Nil fields are left untouched.
type UserUpdate struct {
	Username *string   `json:"username,omitempty"`
	UserType *UserType `json:"user_type,omitempty"`
	IsActive *bool     `json:"is_active,omitempty"`
}

// Apply copies the set fields onto user.
func (u *UserUpdate) Apply(user *User) {
	if u.Username != nil {
		user.Username = *u.Username
	}
	if u.UserType != nil {
		user.UserType = *u.UserType
	}
	if u.IsActive != nil {
		user.IsActive = *u.IsActive
	}
}
