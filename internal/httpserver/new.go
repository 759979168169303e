package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"patient-portal-assistant/internal/metrics"
	"patient-portal-assistant/internal/middleware"
	"patient-portal-assistant/internal/session"
	"patient-portal-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Infrastructure
	postgresDB *sql.DB
	metrics    *metrics.Metrics

	// Assistant domain
	sessions  session.Store
	rateLimit middleware.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PostgresDB *sql.DB
	Metrics    *metrics.Metrics

	Sessions  session.Store
	RateLimit middleware.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		metrics:         cfg.Metrics,
		sessions:        cfg.Sessions,
		rateLimit:       cfg.RateLimit,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}
	if srv.metrics == nil {
		srv.metrics = metrics.New()
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.sessions == nil {
		return errors.New("session store is required")
	}
	return nil
}
