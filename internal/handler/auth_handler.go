package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okgaadi/fleet-api/internal/domain"
	"github.com/okgaadi/fleet-api/internal/dto"
	"github.com/okgaadi/fleet-api/internal/middleware"
	"github.com/okgaadi/fleet-api/internal/service"
	"github.com/okgaadi/fleet-api/pkg/logger"
	"github.com/okgaadi/fleet-api/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles user registration
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyRegistered) {
			response.Error(c, http.StatusBadRequest, "EMAIL_EXISTS", "Email already registered", "")
			return
		}
		if errors.Is(err, domain.ErrInvalidRole) {
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Role must be one of admin, manager, user", "")
			return
		}
		logger.Get().Error("register failed: " + err.Error())
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles the form-encoded login variant; the username field carries
// the email.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	h.login(c, form.Username, form.Password)
}

// LoginJSON handles the JSON login variant.
// POST /api/auth/login-json
func (h *AuthHandler) LoginJSON(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	h.login(c, req.Email, req.Password)
}

func (h *AuthHandler) login(c *gin.Context, email, password string) {
	token, err := h.authService.Login(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Identical response for unknown email and wrong password.
			c.Header("WWW-Authenticate", "Bearer")
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect email or password", "")
			return
		}
		logger.Get().Error("login failed: " + err.Error())
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, token)
}

// Me returns the authenticated user's public profile
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Header("WWW-Authenticate", "Bearer")
		response.Unauthorized(c, "Could not validate credentials")
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// toUserResponse strips the password hash from the outgoing user.
func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
