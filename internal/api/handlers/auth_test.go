package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-recruiting-api/internal/api/handlers"
	"hr-recruiting-api/internal/models"
	"hr-recruiting-api/internal/services"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	registerFn   func(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	loginFn      func(req *dto.LoginRequest) (*dto.AuthResponse, error)
	adminLoginFn func(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

func (s *fakeAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return s.registerFn(req)
}

func (s *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.loginFn(req)
}

func (s *fakeAuthService) AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.adminLoginFn(req)
}

func (s *fakeAuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return nil, services.ErrNotFound
}

func newAuthRouter(svc services.AuthService) *gin.Engine {
	h := handlers.NewAuthHandler(svc, validator.New())
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/admin/login", h.AdminLogin)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &fakeAuthService{
		registerFn: func(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
			jobSeekerID := int64(7)
			return &dto.AuthResponse{
				User: &models.User{
					UserID:      3,
					Email:       req.Email,
					Role:        models.RoleApplicant,
					JobSeekerID: &jobSeekerID,
				},
				Token: "signed-token",
			}, nil
		},
	}
	r := newAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/auth/register", gin.H{
		"email":      "new@example.com",
		"password":   "password123",
		"first_name": "New",
		"last_name":  "User",
	}))

	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"token":"signed-token"`)
	// The password hash never appears in responses.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	tests := []struct {
		name string
		body gin.H
	}{
		{name: "Missing email", body: gin.H{"password": "password123", "first_name": "A", "last_name": "B"}},
		{name: "Bad email", body: gin.H{"email": "not-an-email", "password": "password123", "first_name": "A", "last_name": "B"}},
		{name: "Short password", body: gin.H{"email": "a@b.com", "password": "abc", "first_name": "A", "last_name": "B"}},
		{name: "Bad dob format", body: gin.H{"email": "a@b.com", "password": "password123", "first_name": "A", "last_name": "B", "dob": "15-03-1990"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/auth/register", tc.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			env := decodeEnvelope(t, w)
			assert.False(t, env.Success)
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	svc := &fakeAuthService{
		registerFn: func(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
			return nil, services.ErrConflict
		},
	}
	r := newAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/auth/register", gin.H{
		"email":      "dup@example.com",
		"password":   "password123",
		"first_name": "Dup",
		"last_name":  "User",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(req *dto.LoginRequest) (*dto.AuthResponse, error) {
			return nil, services.ErrInvalidCredentials
		},
	}
	r := newAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/auth/login", gin.H{
		"email":    "jane@example.com",
		"password": "wrong",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestAuthHandler_AdminLogin_Forbidden(t *testing.T) {
	svc := &fakeAuthService{
		adminLoginFn: func(req *dto.LoginRequest) (*dto.AuthResponse, error) {
			return nil, services.ErrForbidden
		},
	}
	r := newAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/auth/admin/login", gin.H{
		"email":    "jane@example.com",
		"password": "password123",
	}))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions")
}
