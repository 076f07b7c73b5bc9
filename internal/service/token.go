package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/okgaadi/fleet-api/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// DefaultAccessTokenTTL bounds a token's lifetime when the caller does not
// specify one.
const DefaultAccessTokenTTL = 30 * time.Minute

// TokenService issues and validates HS256-signed access tokens. Tokens are
// stateless: there is no revocation list, expiry is the only invalidation.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
	now        func() time.Time
}

// NewTokenService creates a TokenService signing with the given secret.
// ttl <= 0 selects DefaultAccessTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &TokenService{
		secret:     []byte(secret),
		defaultTTL: ttl,
		now:        time.Now,
	}
}

// Issue signs a token carrying the subject (user email) and role claims,
// expiring ttl from now. ttl <= 0 uses the service default.
func (s *TokenService) Issue(subject string, role domain.Role, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"role": string(role),
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	})
	return token.SignedString(s.secret)
}

// Validate verifies the token's signature and expiry and returns its claims.
// An unverified payload is never trusted: signature, signing method, expiry
// and the role claim are all checked before anything is returned.
func (s *TokenService) Validate(tokenString string) (*domain.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return nil, ErrInvalidToken
	}
	rawRole, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &domain.Claims{Subject: subject, Role: role}, nil
}
