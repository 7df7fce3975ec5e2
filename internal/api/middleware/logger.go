package middleware

import (
	"time"

	log "log/slog"

	"github.com/gin-gonic/gin"
)

// LoggerMiddleware writes one access log line per request.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []any{
			log.String("method", c.Request.Method),
			log.String("path", path),
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, log.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.ErrorContext(c.Request.Context(), "GIN_ACCESS", fields...)
		default:
			log.InfoContext(c.Request.Context(), "GIN_ACCESS", fields...)
		}
	}
}
