package token

import (
	"errors"
	"testing"
	"time"
)

func TestSignAndVerify_Success(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("super-secret"), time.Hour)

	tok, err := codec.Sign(123)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	gotUserID, err := codec.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if gotUserID != 123 {
		t.Fatalf("userID mismatch: got %d want %d", gotUserID, 123)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("secret"), -1*time.Second)

	tok, err := codec.Sign(1)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	_, err = codec.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewCodec([]byte("right-secret"), time.Hour).Sign(2)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	_, err = NewCodec([]byte("wrong-secret"), time.Hour).Verify(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("k"), time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := codec.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", tok, err)
		}
	}
}

func TestVerify_NoneAlgorithmRejected(t *testing.T) {
	t.Parallel()

	// Unsigned token claiming alg "none": header {"alg":"none","typ":"JWT"},
	// payload {"user_id":1}
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VyX2lkIjoxfQ."

	codec := NewCodec([]byte("secret"), time.Hour)
	if _, err := codec.Verify(unsigned); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for alg none, got %v", err)
	}
}

func TestVerify_StillValidBeforeExpiry(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("secret"), 2*time.Second)

	tok, err := codec.Sign(7)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if _, err := codec.Verify(tok); err != nil {
		t.Fatalf("token should still be valid before expiry, got %v", err)
	}
}
