package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"main/utils"
)

// MetricsMiddleware records request counts, durations and the in-flight
// gauge. The route template is used as the path label so /habits/:id stays
// one series regardless of the actual ID.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		utils.ActiveRequests.Inc()
		defer utils.ActiveRequests.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		utils.TrackHTTPRequest(method, path, c.Writer.Status())
		utils.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
