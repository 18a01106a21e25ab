package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders sets the response headers a JSON API needs against
// framing and MIME sniffing.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Header("Strict-Transport-Security", "max-age=15552000; includeSubDomains")
		c.Header("Cross-Origin-Resource-Policy", "same-origin")

		c.Next()
	}
}
