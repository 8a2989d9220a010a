package gemini

import (
	"context"
	"net/http"
	"strings"
)

// IGemini defines the interface for the Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// ListModels returns bare model names in provider order.
	ListModels(ctx context.Context) ([]string, error)

	// GetModel fetches one model descriptor. model may carry the "models/" prefix.
	GetModel(ctx context.Context, model string) (*ModelInfo, error)

	// GenerateContent sends a single-turn prompt and returns the raw body.
	GenerateContent(ctx context.Context, model, prompt string) (string, error)

	// IsVertexEndpoint reports whether the client targets Vertex AI.
	IsVertexEndpoint() bool

	// BaseURL returns the normalized base URL.
	BaseURL() string
}

// New creates a new Gemini client with the given configuration.
func New(cfg Config) (IGemini, error) {
	c, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// NewClient creates a client for DefaultAPIURL.
func NewClient(apiKey string) (*Client, error) {
	return newClient(Config{APIKey: apiKey})
}

// NewClientWithBaseURL creates a client for an alternate deployment or a test
// double.
func NewClientWithBaseURL(apiKey, baseURL string) (*Client, error) {
	return newClient(Config{APIKey: apiKey, BaseURL: baseURL})
}

// Validate checks that cfg can build a client.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return ErrInvalidAPIKey
	}
	return nil
}

func newClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL := DefaultAPIURL
	if cfg.BaseURL != "" {
		baseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		endpoint:   endpointFor(baseURL),
		httpClient: httpClient,
	}, nil
}
