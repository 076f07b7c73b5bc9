package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/okgaadi/fleet-api/internal/domain"
	"github.com/okgaadi/fleet-api/internal/dto"
	"github.com/okgaadi/fleet-api/internal/middleware"
	"github.com/okgaadi/fleet-api/internal/repository"
	"github.com/okgaadi/fleet-api/internal/service"
)

// newTestServer wires the memory-backed repositories behind the same routes
// main registers, so the tests exercise the full request path.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := repository.NewMemorySet()
	auth := service.NewAuthService(repos.Users, &service.AuthServiceConfig{
		JWTSecret:  "test-secret-key",
		BcryptCost: bcrypt.MinCost,
	})

	authHandler := NewAuthHandler(auth)
	vehicleHandler := NewVehicleHandler(repos.Vehicles)

	router := gin.New()
	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/login-json", authHandler.LoginJSON)
	authRoutes.GET("/me", middleware.Auth(auth), authHandler.Me)

	vehicles := api.Group("/vehicles", middleware.Auth(auth))
	vehicles.GET("", vehicleHandler.List)
	vehicles.POST("", middleware.RequireRole(domain.RoleAdmin), vehicleHandler.Create)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthFlow(t *testing.T) {
	router := newTestServer(t)

	var token string

	t.Run("register", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
			Email:    "alice@example.com",
			Password: "pw12345",
			Name:     "Alice",
		}, "")
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
		}

		var user dto.UserResponse
		if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if user.Email != "alice@example.com" {
			t.Errorf("email = %q", user.Email)
		}
		if user.Role != "manager" {
			t.Errorf("role = %q, want manager", user.Role)
		}
		if strings.Contains(w.Body.String(), "password") {
			t.Error("response leaks password material")
		}
	})

	t.Run("duplicate register", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
			Email:    "alice@example.com",
			Password: "other",
			Name:     "Alice Again",
		}, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
		if !strings.Contains(w.Body.String(), "EMAIL_EXISTS") {
			t.Errorf("body = %s, want EMAIL_EXISTS code", w.Body.String())
		}
	})

	t.Run("invalid email rejected at binding", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
			Email:    "not-an-email",
			Password: "pw12345",
			Name:     "Nobody",
		}, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("login json", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login-json", dto.LoginRequest{
			Email:    "alice@example.com",
			Password: "pw12345",
		}, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}

		var resp dto.TokenResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.TokenType != "bearer" {
			t.Errorf("token_type = %q, want bearer", resp.TokenType)
		}
		if resp.AccessToken == "" {
			t.Fatal("empty access_token")
		}
		token = resp.AccessToken
	})

	t.Run("login form", func(t *testing.T) {
		form := url.Values{}
		form.Set("username", "alice@example.com")
		form.Set("password", "pw12345")
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
	})

	t.Run("login wrong password", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login-json", dto.LoginRequest{
			Email:    "alice@example.com",
			Password: "nope",
		}, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
		if got := w.Header().Get("WWW-Authenticate"); got != "Bearer" {
			t.Errorf("WWW-Authenticate = %q, want Bearer", got)
		}
	})

	t.Run("me with token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		var user dto.UserResponse
		if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if user.Email != "alice@example.com" {
			t.Errorf("email = %q", user.Email)
		}
	})

	t.Run("me with corrupted token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, token+"x")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
		if got := w.Header().Get("WWW-Authenticate"); got != "Bearer" {
			t.Errorf("WWW-Authenticate = %q, want Bearer", got)
		}
	})

	t.Run("me without token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}

func TestVehicleCreatePolicy(t *testing.T) {
	router := newTestServer(t)

	login := func(t *testing.T, email, password, role string) string {
		t.Helper()
		w := doJSON(t, router, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
			Email:    email,
			Password: password,
			Name:     "Policy Test",
			Role:     role,
		}, "")
		if w.Code != http.StatusCreated {
			t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
		}
		w = doJSON(t, router, http.MethodPost, "/api/auth/login-json", dto.LoginRequest{
			Email:    email,
			Password: password,
		}, "")
		if w.Code != http.StatusOK {
			t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
		}
		var resp dto.TokenResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		return resp.AccessToken
	}

	adminToken := login(t, "admin@example.com", "pw12345", "admin")
	managerToken := login(t, "bob@example.com", "pw12345", "")

	vehicle := domain.Vehicle{ID: "VH100", Name: "Test Truck", Type: "Heavy Truck", Status: "active"}

	t.Run("manager cannot create", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/vehicles", vehicle, managerToken)
		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
		}
	})

	t.Run("admin creates", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/vehicles", vehicle, adminToken)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
	})

	t.Run("manager can list", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/vehicles", nil, managerToken)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		var vehicles []domain.Vehicle
		if err := json.Unmarshal(w.Body.Bytes(), &vehicles); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if len(vehicles) != 1 || vehicles[0].ID != "VH100" {
			t.Errorf("vehicles = %+v, want the one created record", vehicles)
		}
	})

	t.Run("anonymous cannot list", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/vehicles", nil, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}
