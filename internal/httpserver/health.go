package httpserver

import (
	"errors"

	"gemini-provider/internal/readiness"
	"gemini-provider/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "gemini-provider"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck runs the readiness check against the provider.
// @Summary Readiness Check
// @Description Validates the API key and lists models. Unreachable providers are reported, not failed.
// @Tags Health
// @Produce json
// @Success 200 {object} readiness.Report "API is ready"
// @Failure 503 {object} response.Resp "Configuration error"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	report, err := srv.readiness.Check(ctx)
	if err != nil {
		var cfgErr *readiness.ConfigError
		if errors.As(err, &cfgErr) {
			response.ServiceUnavailable(c, err, nil)
			return
		}
		srv.l.Errorf(ctx, "internal.httpserver.readyCheck: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, report)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
