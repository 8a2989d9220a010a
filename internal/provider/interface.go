package provider

import "context"

// UseCase exposes the Gemini client operations to delivery layers.
type UseCase interface {
	ListModels(ctx context.Context) (ListModelsOutput, error)
	GetModel(ctx context.Context, name string) (ModelOutput, error)
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}
