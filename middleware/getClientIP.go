package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the client address for rate limiting, preferring
// proxy-set headers over the raw remote address.
func getClientIP(c *gin.Context) string {
	// X-Forwarded-For may hold a comma separated chain; the first entry is
	// the originating client.
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}

	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		return xri
	}

	// RemoteAddr is usually "ip:port"; strip the port when present.
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
