package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/jobboard/apiserver/types"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("super-secret")

	tok, err := issuer.Issue("account-123", types.RoleRecruiter)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Subject != "account-123" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "account-123")
	}
	if claims.Role != types.RoleRecruiter {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, types.RoleRecruiter)
	}
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	issuer := NewTokenIssuer("secret")
	issuer.now = func() time.Time { return issuedAt }

	tok, err := issuer.Issue("a1", types.RoleCandidate)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	issuer.now = func() time.Time { return issuedAt.Add(23*time.Hour + 59*time.Minute) }
	if _, err := issuer.Verify(tok); err != nil {
		t.Fatalf("expected token valid just before expiry, got %v", err)
	}

	issuer.now = func() time.Time { return issuedAt.Add(24*time.Hour + time.Minute) }
	_, err = issuer.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired just after expiry, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenIssuer("right-secret").Issue("a2", types.RoleCandidate)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenIssuer("wrong-secret").Verify(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewTokenIssuer("k").Verify("not.a.jwt")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}
