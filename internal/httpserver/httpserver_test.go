package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"gemini-provider/internal/middleware"
	"gemini-provider/internal/provider"
	"gemini-provider/internal/readiness"
	"gemini-provider/pkg/log"
	"gemini-provider/pkg/response"
)

type stubUseCase struct{}

func (stubUseCase) ListModels(ctx context.Context) (provider.ListModelsOutput, error) {
	return provider.ListModelsOutput{Models: []string{"gemini-2.5-flash"}}, nil
}

func (stubUseCase) GetModel(ctx context.Context, name string) (provider.ModelOutput, error) {
	return provider.ModelOutput{}, nil
}

func (stubUseCase) Generate(ctx context.Context, input provider.GenerateInput) (provider.GenerateOutput, error) {
	return provider.GenerateOutput{Text: input.Prompt}, nil
}

type stubChecker struct {
	report readiness.Report
	err    error
}

func (s stubChecker) Check(ctx context.Context) (readiness.Report, error) {
	return s.report, s.err
}

func newTestServer(t *testing.T, checker readiness.Checker, sec middleware.Config) http.Handler {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     "test",
		Security:        sec,
		ProviderUseCase: stubUseCase{},
		Readiness:       checker,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv.Handler()
}

func get(h http.Handler, path string) (*httptest.ResponseRecorder, response.Resp) {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestNewValidation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Error("expected error without provider use case")
	}
	if _, err := New(nil, Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Error("expected error without logger")
	}
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t, stubChecker{}, middleware.Config{})

	for _, path := range []string{"/health", "/live"} {
		w, _ := get(h, path)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if w.Header().Get(middleware.HeaderRequestID) == "" {
			t.Errorf("%s: missing request id header", path)
		}
	}
}

func TestReadyCheck(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		h := newTestServer(t, stubChecker{report: readiness.Report{Model: "m", Reachable: true}}, middleware.Config{})
		w, resp := get(h, "/ready")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data, _ := resp.Data.(map[string]interface{})
		if data["reachable"] != true || data["model"] != "m" {
			t.Errorf("unexpected report: %v", resp.Data)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		checker := stubChecker{err: &readiness.ConfigError{Variable: "GOOGLE_AI_STUDIO_KEY", Err: readiness.ErrAPIKeyNotFound}}
		h := newTestServer(t, checker, middleware.Config{})
		w, _ := get(h, "/ready")
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})
}

func TestDomainRoutesProtected(t *testing.T) {
	h := newTestServer(t, stubChecker{}, middleware.Config{AllowedIPs: []string{"10.0.0.0/8"}})

	w, _ := get(h, "/api/v1/models")
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for disallowed client, got %d", w.Code)
	}

	// System routes stay open.
	w, _ = get(h, "/health")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 on /health, got %d", w.Code)
	}
}

func TestDomainRoutes(t *testing.T) {
	h := newTestServer(t, stubChecker{}, middleware.Config{})

	w, resp := get(h, "/api/v1/models")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data, _ := resp.Data.(map[string]interface{})
	if models, _ := data["models"].([]interface{}); len(models) != 1 {
		t.Errorf("unexpected data: %v", resp.Data)
	}
}

func TestDomainRoutesIgnoreSpoofedForwardedFor(t *testing.T) {
	h := newTestServer(t, stubChecker{}, middleware.Config{AllowedIPs: []string{"10.0.0.1"}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/models", nil)
	req.RemoteAddr = "203.0.113.9:4444"
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for spoofed X-Forwarded-For, got %d", w.Code)
	}
}

func TestNewInvalidTrustedProxies(t *testing.T) {
	_, err := New(log.NewNop(), Config{
		Port:            8080,
		Mode:            gin.TestMode,
		ProviderUseCase: stubUseCase{},
		Readiness:       stubChecker{},
		Security:        middleware.Config{TrustedProxies: []string{"nope"}},
	})
	if err == nil {
		t.Fatal("expected error for invalid trusted proxy")
	}
}

func TestHandlerIsStable(t *testing.T) {
	srv, err := New(log.NewNop(), Config{
		Port:            8080,
		Mode:            gin.TestMode,
		ProviderUseCase: stubUseCase{},
		Readiness:       stubChecker{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first := srv.Handler()
	second := srv.Handler()
	if w, _ := get(second, "/health"); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if first != second {
		t.Error("Handler must return the same engine")
	}
}
