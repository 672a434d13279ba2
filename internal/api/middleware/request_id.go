package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDCtx    = "requestID"
	requestIDHeader = "X-Request-ID"
)

// RequestID assigns every request a UUID, honoring one supplied by an
// upstream proxy, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDCtx, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
