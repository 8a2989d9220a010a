package provider

import "gemini-provider/pkg/gemini"

type ListModelsOutput struct {
	Models []string
}

type ModelOutput struct {
	Model gemini.ModelInfo
}

type GenerateInput struct {
	Model  string // empty selects the configured default
	Prompt string
}

type GenerateOutput struct {
	Model    string
	Endpoint string
	Text     string // raw provider body
}
