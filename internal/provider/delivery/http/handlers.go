package http

import (
	"github.com/gin-gonic/gin"

	"gemini-provider/pkg/response"
)

// ListModels godoc
// @Summary     List models
// @Description Lists the models the configured API key can access.
// @Tags        Provider
// @Produce     json
// @Success     200 {object} listModelsResp
// @Failure     401 {object} response.Resp "Invalid API key"
// @Failure     502 {object} response.Resp "Upstream error"
// @Router      /api/v1/models [GET]
func (h *handler) ListModels(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListModels(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newListModelsResp(output))
}

// GetModel godoc
// @Summary     Get model
// @Description Returns the descriptor of one model.
// @Tags        Provider
// @Produce     json
// @Param       name path string true "Bare model name, e.g. gemini-2.5-flash"
// @Success     200 {object} modelResp
// @Failure     404 {object} response.Resp "Model not found"
// @Failure     502 {object} response.Resp "Upstream error"
// @Router      /api/v1/models/{name} [GET]
func (h *handler) GetModel(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetModel(ctx, c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newModelResp(output))
}

// Generate godoc
// @Summary     Generate content
// @Description Sends a single-turn prompt and returns the raw provider body.
// @Tags        Provider
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Prompt"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Model not found"
// @Failure     502 {object} response.Resp "Upstream error"
// @Router      /api/v1/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.l.Infof(ctx, "internal.provider.delivery.http.Generate: model=%s bytes=%d", output.Model, len(output.Text))
	response.OK(c, h.newGenerateResp(output))
}
