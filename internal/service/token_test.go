package service

import (
	"errors"
	"testing"
	"time"

	"github.com/okgaadi/fleet-api/internal/domain"
)

func TestTokenService_IssueValidate(t *testing.T) {
	ts := NewTokenService("test-secret-key", 0)

	token, err := ts.Issue("alice@example.com", domain.RoleManager, 0)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	claims, err := ts.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "alice@example.com")
	}
	if claims.Role != domain.RoleManager {
		t.Errorf("Role = %q, want %q", claims.Role, domain.RoleManager)
	}
}

func TestTokenService_Expiry(t *testing.T) {
	issued := time.Now()
	ts := NewTokenService("test-secret-key", 30*time.Minute)
	ts.now = func() time.Time { return issued }

	token, err := ts.Issue("alice@example.com", domain.RoleManager, 0)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := ts.Validate(token); err != nil {
		t.Fatalf("Validate() immediately after issuance: error = %v", err)
	}

	ts.now = func() time.Time { return issued.Add(29 * time.Minute) }
	if _, err := ts.Validate(token); err != nil {
		t.Errorf("Validate() before ttl elapsed: error = %v", err)
	}

	ts.now = func() time.Time { return issued.Add(31 * time.Minute) }
	if _, err := ts.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Validate() after ttl elapsed: error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenService_TamperedToken(t *testing.T) {
	ts := NewTokenService("test-secret-key", 0)

	token, err := ts.Issue("alice@example.com", domain.RoleAdmin, 0)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Flip one character in the payload segment; the signature must no
	// longer verify.
	corrupted := []byte(token)
	i := len(corrupted) / 2
	if corrupted[i] == 'A' {
		corrupted[i] = 'B'
	} else {
		corrupted[i] = 'A'
	}

	if _, err := ts.Validate(string(corrupted)); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate(tampered) error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("issuer-secret", 0)
	verifier := NewTokenService("other-secret", 0)

	token, err := issuer.Issue("alice@example.com", domain.RoleUser, 0)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() with wrong secret: error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	ts := NewTokenService("test-secret-key", 0)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := ts.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestTokenService_UnknownRoleClaim(t *testing.T) {
	ts := NewTokenService("test-secret-key", 0)

	token, err := ts.Issue("alice@example.com", domain.Role("superuser"), 0)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := ts.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() with unknown role claim: error = %v, want ErrInvalidToken", err)
	}
}
