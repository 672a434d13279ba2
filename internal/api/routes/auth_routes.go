package routes

import (
	"hr-recruiting-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers all routes related to authentication. The
// credential endpoints carry their own stricter rate limits.
func RegisterAuthRoutes(
	rg *gin.RouterGroup,
	authHandler handlers.AuthHandlerInterface,
	authMiddleware gin.HandlerFunc,
	loginLimiter gin.HandlerFunc,
	registerLimiter gin.HandlerFunc,
) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", registerLimiter, authHandler.Register)
		auth.POST("/login", loginLimiter, authHandler.Login)
		auth.POST("/admin/login", loginLimiter, authHandler.AdminLogin)
		auth.GET("/profile", authMiddleware, authHandler.Profile)
	}
}
