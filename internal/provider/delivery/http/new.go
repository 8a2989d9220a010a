package http

import (
	"github.com/gin-gonic/gin"

	"gemini-provider/internal/provider"
	"gemini-provider/pkg/log"
)

// Handler is the public interface for the provider HTTP delivery layer.
type Handler interface {
	ListModels(c *gin.Context)
	GetModel(c *gin.Context)
	Generate(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc provider.UseCase
}

// New creates a new HTTP handler for the provider domain.
func New(l log.Logger, uc provider.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
