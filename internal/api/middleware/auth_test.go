package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr-recruiting-api/internal/api/middleware"
	"hr-recruiting-api/internal/models"

	"github.com/gin-gonic/gin"
	jwtv4 "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func init() {
	gin.SetMode(gin.TestMode)
}

// signToken mirrors the claim layout produced at login.
func signToken(t *testing.T, secret string, role models.Role, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwtv4.MapClaims{
		"user_id": int64(42),
		"email":   "jane@example.com",
		"role":    string(role),
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	token, err := jwtv4.NewWithClaims(jwtv4.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newAuthTestRouter(secret string, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{middleware.JWTAuthMiddleware(secret)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		principal, err := middleware.GetPrincipal(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"user_id": principal.UserID,
				"email":   principal.Email,
				"role":    string(principal.Role),
			},
		})
	})
	r.GET("/protected", chain...)
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	r := newAuthTestRouter(testSecret)
	token := signToken(t, testSecret, models.RoleApplicant, time.Hour)

	w := doRequest(r, token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"role":"applicant"`)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	r := newAuthTestRouter(testSecret)

	w := doRequest(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	r := newAuthTestRouter(testSecret)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abcdef")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	r := newAuthTestRouter(testSecret)
	token := signToken(t, testSecret, models.RoleApplicant, -time.Minute)

	w := doRequest(r, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestJWTAuthMiddleware_WrongSecret(t *testing.T) {
	r := newAuthTestRouter(testSecret)
	token := signToken(t, "some-other-secret", models.RoleApplicant, time.Hour)

	w := doRequest(r, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestJWTAuthMiddleware_EmptySecretConfigured(t *testing.T) {
	r := newAuthTestRouter("")
	token := signToken(t, testSecret, models.RoleApplicant, time.Hour)

	w := doRequest(r, token)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r := newAuthTestRouter(testSecret, middleware.RequireAdmin())

	t.Run("Admin passes", func(t *testing.T) {
		token := signToken(t, testSecret, models.RoleAdmin, time.Hour)
		w := doRequest(r, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Applicant is forbidden", func(t *testing.T) {
		token := signToken(t, testSecret, models.RoleApplicant, time.Hour)
		w := doRequest(r, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Insufficient permissions")
	})
}

func TestRequireApplicant(t *testing.T) {
	r := newAuthTestRouter(testSecret, middleware.RequireApplicant())

	token := signToken(t, testSecret, models.RoleAdmin, time.Hour)
	w := doRequest(r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
