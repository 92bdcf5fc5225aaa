package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrMissingCredentials = errors.New("username and password are required")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")

// User models a registered account.
//
// Username is intentionally NOT unique: registration never checks for an
// existing account, so repeated sign-ups with the same name create multiple
// records and login resolves to whichever record the store returns first.
// This mirrors the legacy behaviour and is preserved as a known gap.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role (exact match).
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
