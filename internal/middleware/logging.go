package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"patient-portal-assistant/pkg/log"
)

// Logging tags each request with a trace ID and logs it on completion.
// Bodies are never logged: they carry patient-entered text.
func (m Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		traceID := c.GetHeader(HeaderRequestID)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Header(HeaderRequestID, traceID)
		ctx := log.WithTraceID(c.Request.Context(), traceID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		switch {
		case status >= http.StatusInternalServerError:
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, time.Since(start))
		case status >= http.StatusBadRequest:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, time.Since(start))
		default:
			m.l.Debugf(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, time.Since(start))
		}
	}
}
