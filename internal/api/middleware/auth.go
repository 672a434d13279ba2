package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"hr-recruiting-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

const (
	authorizationHeader = "Authorization"
	principalCtx        = "authPrincipal"
)

// Principal is the authenticated identity extracted from a verified token.
type Principal struct {
	UserID int64
	Email  string
	Role   models.Role
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   message,
	})
}

// JWTAuthMiddleware creates a Gin middleware for JWT authentication. On
// success the decoded Principal is stored in the request context.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtSecret == "" {
			log.Error("Auth middleware: JWT secret is not configured")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Internal server error",
			})
			return
		}

		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			abortUnauthorized(c, "Invalid Authorization header format")
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			log.Infof("Auth middleware: error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortUnauthorized(c, "Token has expired")
			} else {
				abortUnauthorized(c, "Invalid token")
			}
			return
		}
		if !token.Valid {
			abortUnauthorized(c, "Invalid token")
			return
		}

		principal, err := principalFromClaims(claims)
		if err != nil {
			log.Infof("Auth middleware: %v", err)
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(principalCtx, principal)
		c.Next()
	}
}

func principalFromClaims(claims jwt.MapClaims) (*Principal, error) {
	// Numeric claims decode as float64 through encoding/json.
	rawUserID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, errors.New("token missing user_id claim")
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, errors.New("token missing email claim")
	}
	rawRole, ok := claims["role"].(string)
	if !ok {
		return nil, errors.New("token missing role claim")
	}
	role := models.Role(rawRole)
	if !role.Valid() {
		return nil, fmt.Errorf("token carries unknown role %q", rawRole)
	}
	return &Principal{UserID: int64(rawUserID), Email: email, Role: role}, nil
}

// RequireRole gates a route group to one role. It must run after
// JWTAuthMiddleware.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := GetPrincipal(c)
		if err != nil {
			abortUnauthorized(c, "Authentication required")
			return
		}
		if principal.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Insufficient permissions",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin gates a route group to admin users.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// RequireApplicant gates a route group to applicant users.
func RequireApplicant() gin.HandlerFunc {
	return RequireRole(models.RoleApplicant)
}

// GetPrincipal returns the authenticated principal stored by
// JWTAuthMiddleware.
func GetPrincipal(c *gin.Context) (*Principal, error) {
	value, exists := c.Get(principalCtx)
	if !exists {
		return nil, errors.New("principal not found in context")
	}
	principal, ok := value.(*Principal)
	if !ok {
		return nil, errors.New("principal in context is of invalid type")
	}
	return principal, nil
}
