package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether role is one of the recognized roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// Validation errors.
var ErrWeakPassword = errors.New("password does not meet complexity requirements")
var ErrPasswordTooShort = errors.New("password must be at least 8 characters")
var ErrInvalidEmail = errors.New("invalid email format")
var ErrInvalidRole = errors.New("invalid role")
var ErrNoFields = errors.New("no valid fields to update")

// Lookup and conflict errors.
var ErrUserExists = errors.New("email or username already used")
var ErrUserNotFound = errors.New("user not found")
var ErrAvatarNotFound = errors.New("avatar not found")

// Authentication and authorization errors.
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTokenInvalid = errors.New("invalid or expired token")
var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("forbidden: not resource owner")

// User is a registered identity. The stored credential digest is excluded
// from JSON output.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Public returns a copy safe to hand to the transport layer, with the
// credential digest stripped.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// UserUpdate is a partial update: nil slots are left untouched by the
// persistence layer, non-nil slots are written.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	AvatarURL    *string
}

// IsZero reports whether no slot is set.
func (u UserUpdate) IsZero() bool {
	return u.Username == nil && u.Email == nil && u.PasswordHash == nil && u.AvatarURL == nil
}
