package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gemini-provider/config"
	_ "gemini-provider/docs" // Swagger docs
	"gemini-provider/internal/httpserver"
	"gemini-provider/internal/middleware"
	providerUC "gemini-provider/internal/provider/usecase"
	"gemini-provider/internal/readiness"
	"gemini-provider/pkg/gcpauth"
	"gemini-provider/pkg/gemini"
	"gemini-provider/pkg/log"
)

// @title       Gemini Provider API
// @description REST gateway over the Gemini generative-language API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Gemini Provider...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Optional service-account transport (Vertex behind IAM)
	var httpClient *http.Client
	if cfg.Gemini.CredentialsPath != "" {
		httpClient, err = gcpauth.NewHTTPClient(ctx, gcpauth.Config{
			CredentialsPath: cfg.Gemini.CredentialsPath,
			Timeout:         gemini.DefaultTimeout,
		})
		if err != nil {
			logger.Errorf(ctx, "Failed to load service account credentials: %v", err)
			return
		}
		logger.Info(ctx, "Service account transport initialized")
	}

	// 4. Gemini client
	apiKey, err := readiness.ResolveAPIKey(readiness.EnvResolver())
	if err != nil {
		logger.Error(ctx, "Failed to resolve API key: ", err)
		return
	}

	geminiClient, err := gemini.New(gemini.Config{
		APIKey:     apiKey,
		BaseURL:    cfg.Gemini.BaseURL,
		HTTPClient: httpClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	logger.Infof(ctx, "Gemini endpoint: %s (vertex=%t)", geminiClient.BaseURL(), geminiClient.IsVertexEndpoint())

	// 5. Provider domain + readiness
	uc := providerUC.New(logger, geminiClient, cfg.Gemini.Model)
	checker := readiness.New(logger, readiness.EnvResolver(), readiness.Options{
		Model:      cfg.Gemini.Model,
		BaseURL:    cfg.Gemini.BaseURL,
		HTTPClient: httpClient,
	})

	if _, err := checker.Check(ctx); err != nil {
		logger.Error(ctx, "Readiness check failed: ", err)
		return
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Security: middleware.Config{
			RateLimitPerMin: cfg.Security.RateLimitPerMin,
			AllowedIPs:      cfg.Security.AllowedIPs,
			TrustedProxies:  cfg.Security.TrustedProxies,
		},
		ProviderUseCase: uc,
		Readiness:       checker,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
