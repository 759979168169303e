package http

import (
	"github.com/gin-gonic/gin"

	"patient-portal-assistant/internal/middleware"
)

// RegisterRoutes maps the assistant endpoints. Every route requires a caller
// scope; process-voice is additionally rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.Scope())

	rg.POST("/process-voice", mw.RateLimit(), h.ProcessVoice)
	rg.POST("/record", h.Record)
	rg.GET("/history", h.History)
	rg.POST("/diagnose", h.Diagnose)
	rg.DELETE("/sessions/:id", h.ResetSession)
}
