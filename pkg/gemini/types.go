package gemini

import "net/http"

// Config is the input to New. Only APIKey is required.
type Config struct {
	APIKey string
	// BaseURL defaults to DefaultAPIURL. Trailing slashes are stripped.
	BaseURL string
	// HTTPClient defaults to a client with DefaultTimeout.
	HTTPClient *http.Client
}

// Client is a Gemini API client. It is immutable after construction and safe
// for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	endpoint   endpoint
	httpClient *http.Client
}

// ModelInfo describes one model as returned by the models endpoints.
type ModelInfo struct {
	Name                       string   `json:"name"`
	DisplayName                *string  `json:"displayName,omitempty"`
	Description                *string  `json:"description,omitempty"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods,omitempty"`
}

// Supports reports whether method is listed in SupportedGenerationMethods.
func (m ModelInfo) Supports(method string) bool {
	for _, s := range m.SupportedGenerationMethods {
		if s == method {
			return true
		}
	}
	return false
}

type modelListResponse struct {
	Models []ModelInfo `json:"models"`
}

type generateRequest struct {
	Contents []Content `json:"contents"`
}

// Content is one block of a generation request.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds a text segment.
type Part struct {
	Text string `json:"text"`
}
