package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request correlation id in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey is a gin context key for the request correlation id.
	RequestIDContextKey = "requestID"

	maxRequestIDLength = 128
)

// AssignRequestID propagates an incoming X-Request-ID or generates a new one.
func AssignRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the correlation id assigned to the request, if any.
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDContextKey)
}
