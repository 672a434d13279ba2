package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Logger logs the request method, path, status code, and latency for every
// request, tagged with the request id when one is present.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		log.WithFields(log.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"client_ip":  c.ClientIP(),
			"status":     c.Writer.Status(),
			"latency":    latency.String(),
			"request_id": c.GetString(requestIDCtx),
		}).Info("request completed")
	}
}
