package usecase

import (
	"context"
	"strings"

	"gemini-provider/internal/provider"
	"gemini-provider/pkg/gemini"
)

func (uc *implUseCase) Generate(ctx context.Context, input provider.GenerateInput) (provider.GenerateOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return provider.GenerateOutput{}, provider.ErrEmptyPrompt
	}

	model := strings.TrimSpace(input.Model)
	if model == "" {
		model = uc.defaultModel
	}
	if !gemini.IsGeminiModel(gemini.ParseModelName(model).Bare()) {
		uc.l.Warnf(ctx, "internal.provider.usecase.Generate: %q does not look like a Gemini model id", model)
	}

	text, err := uc.client.GenerateContent(ctx, model, input.Prompt)
	if err != nil {
		uc.l.Errorf(ctx, "internal.provider.usecase.Generate: model=%s: %v", model, err)
		return provider.GenerateOutput{}, err
	}

	uc.l.Debugf(ctx, "internal.provider.usecase.Generate: model=%s vertex=%t bytes=%d",
		model, uc.client.IsVertexEndpoint(), len(text))

	return provider.GenerateOutput{
		Model:    model,
		Endpoint: uc.client.BaseURL(),
		Text:     text,
	}, nil
}
