package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"main/utils"
)

// CORSMiddleware allows the configured frontend origins. With no
// CORS_ALLOWED_ORIGINS set, any origin passes (local development).
func CORSMiddleware() gin.HandlerFunc {
	allowed := strings.Split(utils.GetEnvAsString("CORS_ALLOWED_ORIGINS", ""), ",")

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			if len(allowed) == 1 && allowed[0] == "" {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			} else {
				for _, a := range allowed {
					if origin == strings.TrimSpace(a) {
						c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
						break
					}
				}
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, Refresh-Token")
		c.Writer.Header().Set("Access-Control-Allow-Methods",
			"POST, GET, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
