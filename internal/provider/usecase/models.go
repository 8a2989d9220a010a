package usecase

import (
	"context"
	"strings"

	"gemini-provider/internal/provider"
)

func (uc *implUseCase) ListModels(ctx context.Context) (provider.ListModelsOutput, error) {
	models, err := uc.client.ListModels(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.provider.usecase.ListModels: %v", err)
		return provider.ListModelsOutput{}, err
	}
	return provider.ListModelsOutput{Models: models}, nil
}

func (uc *implUseCase) GetModel(ctx context.Context, name string) (provider.ModelOutput, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return provider.ModelOutput{}, provider.ErrEmptyModel
	}

	info, err := uc.client.GetModel(ctx, name)
	if err != nil {
		uc.l.Errorf(ctx, "internal.provider.usecase.GetModel: model=%s: %v", name, err)
		return provider.ModelOutput{}, err
	}
	return provider.ModelOutput{Model: *info}, nil
}
