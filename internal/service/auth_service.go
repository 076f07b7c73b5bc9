package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/okgaadi/fleet-api/internal/domain"
	"github.com/okgaadi/fleet-api/internal/dto"
	"github.com/okgaadi/fleet-api/internal/repository"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
)

// AuthServiceConfig holds configuration for AuthService
type AuthServiceConfig struct {
	JWTSecret         string
	AccessTokenExpiry time.Duration
	BcryptCost        int
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Register creates a new user; role defaults to manager when unspecified
	Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error)
	// Login authenticates a user and issues an access token
	Login(ctx context.Context, email, password string) (*dto.TokenResponse, error)
	// Authenticate validates an access token and resolves its user record
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// authService implements AuthService
type authService struct {
	users  repository.UserRepository
	tokens *TokenService
	config *AuthServiceConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository, config *AuthServiceConfig) AuthService {
	if config.AccessTokenExpiry == 0 {
		config.AccessTokenExpiry = DefaultAccessTokenTTL
	}
	return &authService{
		users:  users,
		tokens: NewTokenService(config.JWTSecret, config.AccessTokenExpiry),
		config: config,
	}
}

// Register creates a new user. The uniqueness check and the insert are not
// serialized against concurrent registrations for the same email; the store's
// own constraints (if any) are the only arbiter of that race.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyRegistered
	}

	// Registration defaults to manager; the seeded standard account uses the
	// user role. Existing clients rely on both defaults.
	role := domain.RoleManager
	if req.Role != "" {
		role, err = domain.ParseRole(req.Role)
		if err != nil {
			return nil, err
		}
	}

	hash, err := HashPassword(req.Password, s.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user. Unknown email and wrong password fail with the
// same error so callers cannot enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.Email, user.Role, 0)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		UserID:      user.ID,
		Role:        string(user.Role),
		Name:        user.Name,
	}, nil
}

// Authenticate validates the token and resolves the user it was issued to.
// A token whose subject no longer exists (user deleted after issuance) is
// rejected the same way as an invalid token.
func (s *authService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
