package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"patient-portal-assistant/internal/model"
	"patient-portal-assistant/pkg/response"
)

// Scope puts the caller identity from the trusted X-User-ID header on the
// request context. Authentication happens upstream of this service.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			m.l.Debugf(c.Request.Context(), "middleware.Scope: missing %s on %s", HeaderUserID, c.FullPath())
			response.Unauthorized(c)
			return
		}

		sc := model.Scope{
			UserID:   userID,
			Username: strings.TrimSpace(c.GetHeader(HeaderUsername)),
		}
		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}
