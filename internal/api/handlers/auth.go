package handlers

import (
	"hr-recruiting-api/internal/api/middleware"
	"hr-recruiting-api/internal/services"
	"hr-recruiting-api/internal/transport/dto"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler holds the auth service dependency for authentication operations.
type AuthHandler struct {
	service   services.AuthService
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given service.
func NewAuthHandler(service services.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{service: service, validator: validate}
}

// Register godoc
// @Summary      Register a new applicant
// @Description  Creates a job seeker profile and an applicant account atomically.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.RegisterRequest true "Registration payload"
// @Success      201  {object}  dto.AuthResponse "Account created"
// @Failure      400  {object}  map[string]interface{} "Validation failure or duplicate email"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, resp)
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and issues a JWT.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credentials"
// @Success      200  {object}  dto.AuthResponse "Authenticated"
// @Failure      401  {object}  map[string]interface{} "Invalid credentials"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, resp)
}

// AdminLogin godoc
// @Summary      Log in as admin
// @Description  Verifies credentials, then requires the admin role.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credentials"
// @Success      200  {object}  dto.AuthResponse "Authenticated"
// @Failure      401  {object}  map[string]interface{} "Invalid credentials"
// @Failure      403  {object}  map[string]interface{} "Not an admin"
// @Router       /api/auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	resp, err := h.service.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, resp)
}

// Profile godoc
// @Summary      Current user profile
// @Description  Returns the authenticated user's account record.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User "Authenticated user"
// @Failure      401  {object}  map[string]interface{} "Missing or invalid token"
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.service.GetProfile(c.Request.Context(), principal.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, user)
}
