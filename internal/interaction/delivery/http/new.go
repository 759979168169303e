package http

import (
	"github.com/gin-gonic/gin"

	"patient-portal-assistant/internal/interaction"
	"patient-portal-assistant/pkg/log"
)

// Handler is the public interface for the interaction HTTP delivery layer.
type Handler interface {
	ProcessVoice(c *gin.Context)
	Record(c *gin.Context)
	History(c *gin.Context)
	Diagnose(c *gin.Context)
	ResetSession(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc interaction.UseCase
}

// New creates a new HTTP handler for the interaction domain.
func New(l log.Logger, uc interaction.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
