package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spalhad/kvstore/internal/logging"
	"github.com/spalhad/kvstore/internal/metrics"
)

// Logger is a Gin middleware that logs every request with method, path,
// status code, and latency, and records it in metrics.HTTPRequestsTotal.
func Logger() gin.HandlerFunc {
	logger := logging.WithComponent("httpserver")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request handled")

		metrics.HTTPRequestsTotal.WithLabelValues(c.FullPath(), statusClass(status)).Inc()
	}
}

// Recovery stands in for Gin's default recovery: it logs panics through
// zerolog and answers 500 with a {"trace": [...]} body.
func Recovery() gin.HandlerFunc {
	logger := logging.WithComponent("httpserver")
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().Interface("panic", r).Msg("recovered from panic")
				c.AbortWithStatusJSON(500, gin.H{"trace": []string{"internal server error"}})
			}
		}()
		c.Next()
	}
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
