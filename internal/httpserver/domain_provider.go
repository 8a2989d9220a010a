package httpserver

import (
	"context"

	providerHTTP "gemini-provider/internal/provider/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupProviderDomain registers /api/v1/models and /api/v1/generate.
func (srv HTTPServer) setupProviderDomain(ctx context.Context, api *gin.RouterGroup) {
	h := providerHTTP.New(srv.l, srv.providerUC)
	providerHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Provider domain registered")
}
