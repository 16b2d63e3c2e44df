package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SwaggerPrefix is served with the UI's own caching and framing rules
const SwaggerPrefix = "/swagger/"

var apiHeaders = map[string]string{
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
	"Cache-Control":           "no-store",
}

// SafeHeader adds security-related headers to each response. API responses
// additionally forbid caching and any embedded content.
func SafeHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("X-Powered-By", "")
		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		if !strings.HasPrefix(c.Request.URL.Path, SwaggerPrefix) {
			for k, v := range apiHeaders {
				c.Header(k, v)
			}
		}

		c.Next()
	}
}
