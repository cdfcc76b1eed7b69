package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/handover-backend-go/internal/logging"
)

// RequestIDHeader carries the request id in and out
const RequestIDHeader = "X-Request-ID"

// Logger middleware tags each request with an id and logs it when done
func Logger(log logging.Logger) gin.HandlerFunc {
	if log == nil {
		log = logging.Noop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = logging.NewRequestID()
		}
		c.Header(RequestIDHeader, id)
		ctx := logging.ContextWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}
		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", path),
			logging.String("client_ip", c.ClientIP()),
			logging.Int("status", c.Writer.Status()),
			logging.Any("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logging.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error(ctx, "request failed", fields...)
		case status >= 400:
			log.Warn(ctx, "request rejected", fields...)
		default:
			log.Info(ctx, "request", fields...)
		}
	}
}
