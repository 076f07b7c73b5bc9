package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/okgaadi/fleet-api/internal/domain"
	"github.com/okgaadi/fleet-api/internal/service"
	"github.com/okgaadi/fleet-api/pkg/logger"
	"github.com/okgaadi/fleet-api/pkg/response"
)

// userKey is the gin context key under which the authenticated user is stored.
const userKey = "user"

const bearerPrefix = "Bearer "

// Auth validates the bearer token on the request, resolves the user it was
// issued to, and stores the user in the gin context. Credential failures
// (missing or malformed header, invalid/expired token, subject with no user
// record) abort with 401 and a re-authentication challenge. A store failure
// while resolving the user is not a credential problem and aborts with a
// generic 500 instead.
func Auth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			challenge(c)
			return
		}
		token := authHeader[len(bearerPrefix):]
		if token == "" {
			challenge(c)
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrInvalidToken) ||
				errors.Is(err, service.ErrTokenExpired) ||
				errors.Is(err, service.ErrUserNotFound) {
				challenge(c)
				return
			}
			logger.Get().Error("authenticate failed: " + err.Error())
			response.InternalError(c)
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireRole enforces that the authenticated user holds the given role.
// It must run after Auth. A valid identity with a different role is rejected
// with 403, distinct from the 401 the gate produces.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			challenge(c)
			return
		}
		if !Authorized(user, role) {
			response.Forbidden(c, "Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Authorized is the role policy predicate: the user must hold exactly the
// required role.
func Authorized(user *domain.User, required domain.Role) bool {
	return user != nil && user.Role == required
}

// CurrentUser returns the user resolved by Auth, or nil outside a gated route.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}

// challenge rejects the request with a stable generic message and a bearer
// challenge; it never reveals which validation step failed.
func challenge(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	response.Unauthorized(c, "Could not validate credentials")
	c.Abort()
}
