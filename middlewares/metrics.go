package middlewares

import (
	"strconv"
	"time"

	"github.com/Vitnet1814/qrmenu-sub000/prometheus"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latencies per route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		prometheus.HttpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		prometheus.HttpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
