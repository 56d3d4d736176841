package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/delivery-marketplace/internal/logging"
)

const TraceHeader = "X-Trace-Id"

// TraceMiddleware takes the trace id from X-Trace-Id or generates one, echoes
// it back and stores it in the request context.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		c.Header(TraceHeader, traceID)
		c.Request = c.Request.WithContext(logging.WithTraceID(c.Request.Context(), traceID))

		c.Next()
	}
}

// LoggerMiddleware writes one line per request.
func LoggerMiddleware(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(start).String(),
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			log.Error(ctx, "HTTP request", args...)
		case status >= 400:
			log.Warn(ctx, "HTTP request", args...)
		default:
			log.Info(ctx, "HTTP request", args...)
		}
	}
}
