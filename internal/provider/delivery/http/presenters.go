package http

import (
	"gemini-provider/internal/provider"
	"gemini-provider/pkg/gemini"
)

// --- Request DTOs ---

type generateReq struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt" binding:"required"`
}

func (r generateReq) toInput() provider.GenerateInput {
	return provider.GenerateInput{
		Model:  r.Model,
		Prompt: r.Prompt,
	}
}

// --- Response DTOs ---

type listModelsResp struct {
	Models []string `json:"models"`
}

type modelResp struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"display_name,omitempty"`
	Description                string   `json:"description,omitempty"`
	SupportedGenerationMethods []string `json:"supported_generation_methods,omitempty"`
	CanGenerate                bool     `json:"can_generate"`
}

type generateResp struct {
	Model    string `json:"model"`
	Endpoint string `json:"endpoint"`
	Text     string `json:"text"`
}

func (h *handler) newListModelsResp(o provider.ListModelsOutput) listModelsResp {
	models := o.Models
	if models == nil {
		models = []string{}
	}
	return listModelsResp{Models: models}
}

func (h *handler) newModelResp(o provider.ModelOutput) modelResp {
	return modelResp{
		Name:                       gemini.ParseModelName(o.Model.Name).Bare(),
		DisplayName:                deref(o.Model.DisplayName),
		Description:                deref(o.Model.Description),
		SupportedGenerationMethods: o.Model.SupportedGenerationMethods,
		CanGenerate:                o.Model.Supports(gemini.MethodGenerateContent),
	}
}

func (h *handler) newGenerateResp(o provider.GenerateOutput) generateResp {
	return generateResp{
		Model:    o.Model,
		Endpoint: o.Endpoint,
		Text:     o.Text,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
