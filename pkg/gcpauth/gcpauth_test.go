package gcpauth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gemini-provider/pkg/gcpauth"
)

func serviceAccountJSON(t *testing.T) []byte {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	data, err := json.Marshal(map[string]string{
		"type":           "service_account",
		"project_id":     "test-project",
		"private_key_id": "abc123",
		"private_key":    string(keyPEM),
		"client_email":   "svc@test-project.iam.gserviceaccount.com",
		"client_id":      "1234567890",
		"token_uri":      "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		t.Fatalf("marshal credentials: %v", err)
	}
	return data
}

func TestNewHTTPClient_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sa.json")
	if err := os.WriteFile(path, serviceAccountJSON(t), 0o600); err != nil {
		t.Fatalf("write credentials: %v", err)
	}

	client, err := gcpauth.NewHTTPClient(context.Background(), gcpauth.Config{
		CredentialsPath: path,
		Timeout:         5 * time.Minute,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Timeout != 5*time.Minute {
		t.Errorf("Timeout = %v, want 5m", client.Timeout)
	}
}

func TestNewHTTPClient_Errors(t *testing.T) {
	ctx := context.Background()

	if _, err := gcpauth.NewHTTPClient(ctx, gcpauth.Config{}); !errors.Is(err, gcpauth.ErrNoCredentials) {
		t.Errorf("expected ErrNoCredentials, got %v", err)
	}

	if _, err := gcpauth.NewHTTPClient(ctx, gcpauth.Config{CredentialsPath: filepath.Join(t.TempDir(), "missing.json")}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	if _, err := gcpauth.NewHTTPClient(ctx, gcpauth.Config{CredentialsJSON: []byte(`{"type":"authorized_user"}`)}); err == nil {
		t.Error("expected error for non service-account credentials")
	}
}
