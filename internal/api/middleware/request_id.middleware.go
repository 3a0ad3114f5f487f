package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the correlation id in and out
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key holding the id
	RequestIDKey = "request_id"
)

// maxRequestIDLen bounds client supplied ids
const maxRequestIDLen = 128

// RequestID propagates a caller supplied X-Request-ID or mints a UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		// Written back so loggers that only see the request find it.
		c.Request.Header.Set(RequestIDHeader, id)
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
