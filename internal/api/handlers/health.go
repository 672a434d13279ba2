package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports service liveness.
//
//	@Summary		Health check
//	@Description	Check if the service is up and running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}	"API is healthy"
//	@Router			/health [get]
func HealthCheck(environment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"environment": environment,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}
