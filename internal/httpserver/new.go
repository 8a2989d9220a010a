package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"gemini-provider/internal/middleware"
	"gemini-provider/internal/provider"
	"gemini-provider/internal/readiness"
	"gemini-provider/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Gateway protection
	mw middleware.Middleware

	// Provider domain
	providerUC provider.UseCase
	readiness  readiness.Checker
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Security middleware.Config

	ProviderUseCase provider.UseCase
	Readiness       readiness.Checker
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		providerUC:  cfg.ProviderUseCase,
		readiness:   cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(srv.l, cfg.Security)
	if err := srv.mw.TrustProxies(srv.gin); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	srv.mapHandlers()

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
	if srv.providerUC == nil {
		return errors.New("provider use case is required")
	}
	if srv.readiness == nil {
		return errors.New("readiness checker is required")
	}
	return nil
}
