package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	interactionHTTP "patient-portal-assistant/internal/interaction/delivery/http"
	interactionRepo "patient-portal-assistant/internal/interaction/repository/postgre"
	interactionUC "patient-portal-assistant/internal/interaction/usecase"
	"patient-portal-assistant/internal/middleware"
)

// setupAssistantDomain wires the interaction domain and registers /api/v1/ai.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := interactionRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := interactionUC.New(srv.l, repo, srv.sessions, srv.metrics)

	// 3. HTTP Handler
	h := interactionHTTP.New(srv.l, uc)

	// 4. Routes
	interactionHTTP.RegisterRoutes(api.Group("/ai"), h, mw)

	srv.l.Infof(ctx, "Assistant domain registered at /api/v1/ai")
	return nil
}
