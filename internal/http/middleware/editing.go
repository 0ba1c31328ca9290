package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EditGuard gates mutating routes behind the injected editing capability.
// The published copy of the itinerary runs read-only; only a local instance
// is started with editing enabled. The decision is configuration, never
// hostname sniffing inside handlers.
func EditGuard(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "editing dinonaktifkan pada instance ini",
			})
			return
		}
		c.Next()
	}
}
