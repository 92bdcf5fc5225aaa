package cookies

import (
	"strings"
	"testing"
	"time"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	value := Encode("abc123", "secret")
	token, err := Decode(value, "secret")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if token != "abc123" {
		t.Fatalf("expected token abc123, got %q", token)
	}
}

func TestDecode_TamperedToken(t *testing.T) {
	value := Encode("abc123", "secret")
	tampered := "xyz999" + value[strings.Index(value, "."):]
	if _, err := Decode(tampered, "secret"); err != ErrInvalidCookie {
		t.Fatalf("expected ErrInvalidCookie, got %v", err)
	}
}

func TestDecode_WrongSecret(t *testing.T) {
	value := Encode("abc123", "secret")
	if _, err := Decode(value, "other"); err != ErrInvalidCookie {
		t.Fatalf("expected ErrInvalidCookie, got %v", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, value := range []string{"", "no-separator", ".sigonly"} {
		if _, err := Decode(value, "secret"); err != ErrInvalidCookie {
			t.Fatalf("value %q: expected ErrInvalidCookie, got %v", value, err)
		}
	}
}

func TestNew_SetsSessionAttributes(t *testing.T) {
	c := New("tok", "secret", time.Hour)
	if c.Name != Name {
		t.Fatalf("unexpected cookie name %q", c.Name)
	}
	if c.MaxAge != 3600 {
		t.Fatalf("expected MaxAge 3600, got %d", c.MaxAge)
	}
	if !c.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
}

func TestCleared_DropsCookie(t *testing.T) {
	c := Cleared()
	if c.MaxAge >= 0 {
		t.Fatalf("expected negative MaxAge, got %d", c.MaxAge)
	}
	if c.Value != "" {
		t.Fatalf("expected empty value")
	}
}
