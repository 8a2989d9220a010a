package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gemini-provider/internal/provider"
	"gemini-provider/pkg/gemini"
	"gemini-provider/pkg/response"
)

// writeError translates use-case and client errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	var (
		httpErr *gemini.HTTPError
		jsonErr *gemini.JSONError
	)

	switch {
	case errors.Is(err, provider.ErrEmptyPrompt), errors.Is(err, provider.ErrEmptyModel):
		response.BadRequest(c, err)
	case errors.Is(err, gemini.ErrInvalidAPIKey):
		response.Error(c, http.StatusUnauthorized, err, nil)
	case errors.Is(err, gemini.ErrModelNotFound):
		response.NotFound(c, err)
	case errors.As(err, &httpErr), errors.As(err, &jsonErr):
		response.BadGateway(c, err)
	default:
		response.InternalError(c, err)
	}
}
