package domain

import (
	"errors"
	"time"
)

// Role represents user role
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// ErrInvalidRole is returned when a role value outside the closed set is
// presented at any boundary (registration input, stored record, token claim).
var ErrInvalidRole = errors.New("invalid role")

// ParseRole validates a raw role value against the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleUser:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// Valid reports whether the role belongs to the closed role set.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// User represents a user entity
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"hashed_password"` // Never serialize password
	Name         string    `json:"name" bson:"name"`
	Role         Role      `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Claims represents the assertions carried by an access token.
type Claims struct {
	Subject string `json:"sub"`
	Role    Role   `json:"role"`
}
