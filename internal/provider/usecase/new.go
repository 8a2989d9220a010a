package usecase

import (
	"gemini-provider/internal/provider"
	"gemini-provider/pkg/gemini"
	"gemini-provider/pkg/log"
)

// implUseCase is the private implementation of provider.UseCase.
type implUseCase struct {
	l            log.Logger
	client       gemini.IGemini
	defaultModel string
}

// New creates a new provider UseCase. defaultModel falls back to
// gemini.DefaultModel when empty.
func New(l log.Logger, client gemini.IGemini, defaultModel string) provider.UseCase {
	if defaultModel == "" {
		defaultModel = gemini.DefaultModel
	}
	return &implUseCase{
		l:            l,
		client:       client,
		defaultModel: defaultModel,
	}
}
