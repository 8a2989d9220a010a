package readiness

import (
	"context"
	"strings"

	"gemini-provider/internal/model"
	"gemini-provider/pkg/gemini"
)

// ResolveAPIKey returns the first key variable that is set. A set but blank
// value is an error; later variables are not consulted.
func ResolveAPIKey(resolve KeyResolver) (string, error) {
	for _, name := range model.APIKeyEnvVars {
		value, ok := resolve(name)
		if !ok {
			continue
		}
		if strings.TrimSpace(value) == "" {
			return "", &ConfigError{Variable: name, Err: ErrAPIKeyEmpty}
		}
		return value, nil
	}
	return "", &ConfigError{Variable: model.EnvGoogleAIStudioKey, Err: ErrAPIKeyNotFound}
}

func (c *checker) Check(ctx context.Context) (Report, error) {
	modelName := c.opts.Model
	if modelName == "" {
		modelName = gemini.DefaultModel
	}

	apiKey, err := ResolveAPIKey(c.resolve)
	if err != nil {
		c.l.Errorf(ctx, "internal.readiness.Check: %v", err)
		return Report{Model: modelName}, err
	}

	client, err := gemini.New(gemini.Config{
		APIKey:     apiKey,
		BaseURL:    c.opts.BaseURL,
		HTTPClient: c.opts.HTTPClient,
	})
	if err != nil {
		return Report{Model: modelName}, &ConfigError{Variable: model.EnvGoogleAIStudioKey, Err: err}
	}

	report := Report{Model: modelName, Endpoint: client.BaseURL()}

	models, err := client.ListModels(ctx)
	if err != nil {
		c.l.Warnf(ctx, "internal.readiness.Check: failed to list Gemini models: %v. Proceeding anyway.", err)
		return report, nil
	}

	report.Reachable = true
	report.Models = models
	c.l.Infof(ctx, "internal.readiness.Check: Gemini API connection successful. Available models: %v", models)

	for _, m := range models {
		if strings.Contains(m, modelName) {
			report.ModelAvailable = true
			break
		}
	}
	if !report.ModelAvailable {
		c.l.Warnf(ctx, "internal.readiness.Check: requested model %q not found in available models. This may cause issues.", modelName)
	}

	return report, nil
}
