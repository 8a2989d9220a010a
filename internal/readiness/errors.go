package readiness

import (
	"errors"
	"fmt"

	"gemini-provider/internal/model"
	"gemini-provider/pkg/gemini"
)

var (
	ErrAPIKeyNotFound = errors.New("gemini API key not found")
	ErrAPIKeyEmpty    = errors.New("gemini API key is empty")
)

// ConfigError reports a configuration problem that blocks readiness.
// Variable is the environment variable the user should set or fix.
type ConfigError struct {
	Variable string
	Err      error
}

func (e *ConfigError) Error() string {
	if errors.Is(e.Err, ErrAPIKeyNotFound) {
		return fmt.Sprintf("Gemini API key not found. Please set %s environment variable.\nGet your API key at: %s",
			model.EnvGoogleAIStudioKey, gemini.APIKeyPageURL)
	}
	return fmt.Sprintf("%v (%s)", e.Err, e.Variable)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
