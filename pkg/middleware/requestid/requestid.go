package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// Header is the canonical request id header.
	Header = "X-Request-ID"

	contextKey = "request_id"
)

// New assigns a request id to every request, reusing the caller-provided one
// when present.
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(contextKey, id)
		c.Header(Header, id)
		c.Next()
	}
}

// Value returns the request id stored on the context, or empty.
func Value(c *gin.Context) string {
	if v, ok := c.Get(contextKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
