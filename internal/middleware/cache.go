package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PublicCache marks catalog GET responses (doctors, departments, services)
// as cacheable; everything else is no-store.
func PublicCache(maxAgeSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Header("Cache-Control", "no-store")
			c.Next()
			return
		}

		c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAgeSeconds))
		c.Header("Vary", "Authorization")
		c.Next()
	}
}
