// Package cookies encodes the opaque session token into an HMAC-signed
// cookie so a tampered or forged token is rejected before any store lookup.
package cookies

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"
)

// Name is the session cookie name.
const Name = "sid"

var ErrInvalidCookie = errors.New("invalid session cookie")

// Encode returns the cookie value for token: "<token>.<hex hmac-sha256>".
func Encode(token, secret string) string {
	return token + "." + sign(token, secret)
}

// Decode verifies the signature and returns the embedded token.
func Decode(value, secret string) (string, error) {
	token, sig, ok := strings.Cut(value, ".")
	if !ok || token == "" {
		return "", ErrInvalidCookie
	}
	if !hmac.Equal([]byte(sig), []byte(sign(token, secret))) {
		return "", ErrInvalidCookie
	}
	return token, nil
}

// New builds the session cookie carrying a signed token.
func New(token, secret string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Value:    Encode(token, secret),
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Cleared returns a cookie that instructs the client to drop the session
// cookie immediately.
func Cleared() *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func sign(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
