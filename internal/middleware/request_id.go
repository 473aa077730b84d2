// Package middleware provides HTTP middleware components for the check-in service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions: tablets may
// send one to correlate their retry chain, and every response echoes it so
// a venue-side complaint can be matched to server logs.
const RequestIDHeader = "X-Request-ID"

// ContextKey type for context keys to avoid collisions.
type ContextKey string

// RequestIDKey is the gin context key the request ID is stored under.
const RequestIDKey ContextKey = "request_id"

// RequestID tags each request with an ID, reusing the client's
// X-Request-ID when present and generating a UUID otherwise. The logging,
// recovery, and error-handling middleware all read it back through
// GetRequestID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request ID set by RequestID, or "" when the
// middleware did not run.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(string(RequestIDKey)); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}
