package domain

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side record behind an opaque client-held token.
// UserRole is a copy of the user's role at login time; it is deliberately
// never refreshed if the account's role changes later.
type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"user_id"`
	UserRole  string    `json:"user_role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSessionToken returns a cryptographically random 128-bit token encoded
// as 32 hex characters.
func NewSessionToken() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// rand.Read on supported platforms never fails; if it does the
		// process cannot issue sessions at all.
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

// Authenticated reports whether the session references a logged-in user.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}
