package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/okgaadi/fleet-api/internal/domain"
	"github.com/okgaadi/fleet-api/internal/dto"
	"github.com/okgaadi/fleet-api/internal/repository"
)

func newTestAuthService() (AuthService, repository.UserRepository) {
	users := repository.NewMemoryUserRepository()
	svc := NewAuthService(users, &AuthServiceConfig{
		JWTSecret:         "test-secret-key",
		AccessTokenExpiry: 30 * time.Minute,
		BcryptCost:        bcrypt.MinCost,
	})
	return svc, users
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	t.Run("successful registration defaults to manager", func(t *testing.T) {
		user, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "alice@example.com",
			Password: "pw12345",
			Name:     "Alice",
		})
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if user.Role != domain.RoleManager {
			t.Errorf("Role = %q, want %q", user.Role, domain.RoleManager)
		}
		if user.ID == "" {
			t.Error("Register() assigned no id")
		}
		if user.PasswordHash == "pw12345" {
			t.Error("password stored in plaintext")
		}
	})

	t.Run("explicit role is honored", func(t *testing.T) {
		user, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "admin2@example.com",
			Password: "pw12345",
			Name:     "Second Admin",
			Role:     "admin",
		})
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if user.Role != domain.RoleAdmin {
			t.Errorf("Role = %q, want %q", user.Role, domain.RoleAdmin)
		}
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "mallory@example.com",
			Password: "pw12345",
			Name:     "Mallory",
			Role:     "superuser",
		})
		if !errors.Is(err, domain.ErrInvalidRole) {
			t.Errorf("Register() error = %v, want ErrInvalidRole", err)
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "alice@example.com",
			Password: "other",
			Name:     "Alice Again",
		})
		if !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Errorf("Register() error = %v, want ErrEmailAlreadyRegistered", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "pw12345",
		Name:     "Alice",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("successful login", func(t *testing.T) {
		token, err := svc.Login(ctx, "alice@example.com", "pw12345")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if token.AccessToken == "" {
			t.Error("Login() returned empty access token")
		}
		if token.TokenType != "bearer" {
			t.Errorf("TokenType = %q, want %q", token.TokenType, "bearer")
		}
		if token.Role != "manager" {
			t.Errorf("Role = %q, want %q", token.Role, "manager")
		}
		if token.Name != "Alice" {
			t.Errorf("Name = %q, want %q", token.Name, "Alice")
		}
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		_, wrongPassErr := svc.Login(ctx, "alice@example.com", "nope")
		_, noUserErr := svc.Login(ctx, "nobody@example.com", "pw12345")

		if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
			t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPassErr)
		}
		if !errors.Is(noUserErr, ErrInvalidCredentials) {
			t.Errorf("unknown email error = %v, want ErrInvalidCredentials", noUserErr)
		}
		if wrongPassErr.Error() != noUserErr.Error() {
			t.Error("credential failures are distinguishable")
		}
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "pw12345",
		Name:     "Alice",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	token, err := svc.Login(ctx, "alice@example.com", "pw12345")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	t.Run("valid token resolves user", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, token.AccessToken)
		if err != nil {
			t.Fatalf("Authenticate() error = %v", err)
		}
		if user.Email != "alice@example.com" {
			t.Errorf("Email = %q, want %q", user.Email, "alice@example.com")
		}
	})

	t.Run("corrupted token fails", func(t *testing.T) {
		if _, err := svc.Authenticate(ctx, token.AccessToken+"x"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Authenticate() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("token for a since-deleted user fails", func(t *testing.T) {
		// Replace the memory store contents out from under the service by
		// building a fresh service sharing the same secret but an empty
		// repository.
		empty := repository.NewMemoryUserRepository()
		orphan := NewAuthService(empty, &AuthServiceConfig{
			JWTSecret:  "test-secret-key",
			BcryptCost: bcrypt.MinCost,
		})
		if _, err := orphan.Authenticate(ctx, token.AccessToken); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("Authenticate() error = %v, want ErrUserNotFound", err)
		}
	})
}
