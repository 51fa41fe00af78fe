package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret", 0)

	tok, err := codec.Issue("user_1", "alice", "staff")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := codec.Verify(tok)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "user_1" || claims.Username != "alice" || claims.Role != "staff" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	// No TTL configured means no expiry claim.
	if claims.ExpiresAt != nil {
		t.Fatalf("expected no expiry claim, got %v", claims.ExpiresAt)
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	codec := NewCodec("secret", 0)

	tok, err := codec.Issue("user_1", "alice", "staff")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip a byte in the signature segment.
	tampered := tok[:len(tok)-2] + "xx"
	if _, err := codec.Verify(tampered); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	tok, err := NewCodec("secret", 0).Issue("user_1", "alice", "staff")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewCodec("other-secret", 0).Verify(tok); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestCodec_Malformed(t *testing.T) {
	codec := NewCodec("secret", 0)

	for _, tok := range []string{"", "garbage", "a.b", strings.Repeat("x", 64)} {
		if _, err := codec.Verify(tok); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Verify(%q): expected ErrMalformed, got %v", tok, err)
		}
	}
}

func TestCodec_Expired(t *testing.T) {
	codec := NewCodec("secret", time.Millisecond)

	tok, err := codec.Issue("user_1", "alice", "staff")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := codec.Verify(tok); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}
