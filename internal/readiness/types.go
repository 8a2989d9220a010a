package readiness

import (
	"net/http"
	"os"

	pkgLog "gemini-provider/pkg/log"
)

// KeyResolver looks up a named secret. os.LookupEnv satisfies it.
type KeyResolver func(name string) (string, bool)

// EnvResolver resolves secrets from the process environment.
func EnvResolver() KeyResolver {
	return os.LookupEnv
}

// Options configures the client the check builds.
type Options struct {
	// Model defaults to gemini.DefaultModel.
	Model string
	// BaseURL defaults to gemini.DefaultAPIURL.
	BaseURL string
	// HTTPClient is optional, e.g. a service-account transport.
	HTTPClient *http.Client
}

// Report describes what the check observed.
type Report struct {
	Model          string   `json:"model"`
	Endpoint       string   `json:"endpoint"`
	Reachable      bool     `json:"reachable"`
	ModelAvailable bool     `json:"model_available"`
	Models         []string `json:"models,omitempty"`
}

type checker struct {
	l       pkgLog.Logger
	resolve KeyResolver
	opts    Options
}
