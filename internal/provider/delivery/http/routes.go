package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	models := rg.Group("/models")
	{
		models.GET("", h.ListModels)
		models.GET("/:name", h.GetModel)
	}
	rg.POST("/generate", h.Generate)
}
