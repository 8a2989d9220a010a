// Package gcpauth builds HTTP clients authenticated with a Google service
// account, for deployments that front the Vertex endpoint with IAM.
package gcpauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"
)

// CloudPlatformScope is the OAuth scope Vertex AI requires.
const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// ErrNoCredentials is returned when Config carries neither a path nor JSON.
var ErrNoCredentials = errors.New("gcpauth: no credentials provided")

// Config selects the service account and the per-request timeout.
type Config struct {
	CredentialsPath string
	CredentialsJSON []byte
	Timeout         time.Duration
}

// NewHTTPClient returns an *http.Client that attaches service-account bearer
// tokens to every request.
func NewHTTPClient(ctx context.Context, cfg Config) (*http.Client, error) {
	data := cfg.CredentialsJSON
	if len(data) == 0 {
		if cfg.CredentialsPath == "" {
			return nil, ErrNoCredentials
		}
		var err error
		data, err = os.ReadFile(cfg.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("gcpauth: failed to read credentials file: %w", err)
		}
	}

	jwtCfg, err := google.JWTConfigFromJSON(data, CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("gcpauth: unsupported credentials format: %w", err)
	}

	client, _, err := htransport.NewClient(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("gcpauth: failed to create transport: %w", err)
	}
	client.Timeout = cfg.Timeout
	return client, nil
}
