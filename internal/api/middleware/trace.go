package middleware

import (
	"github.com/MyelinBots/stillalive-go/internal/services/context_manager"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	TraceIDHeader = "X-Trace-ID"
	TraceIDKey    = "trace_id"
)

func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Set(TraceIDKey, traceID)
		c.Request = c.Request.WithContext(context_manager.SetTraceIDContext(c.Request.Context(), traceID))

		c.Header(TraceIDHeader, traceID)
		c.Next()
	}
}
