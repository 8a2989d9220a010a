package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"gemini-provider/internal/model"
)

// Config holds all service configuration. API keys are deliberately absent:
// they are resolved from the environment by the readiness check.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Provider
	Gemini GeminiConfig

	// Gateway protection
	Security SecurityConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig holds provider settings.
type GeminiConfig struct {
	Model           string
	BaseURL         string
	CredentialsPath string // service account JSON, Vertex only
}

type SecurityConfig struct {
	RateLimitPerMin int
	AllowedIPs      []string
	TrustedProxies  []string // empty: client IP is the TCP peer, forwarding headers ignored
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// LoadFile loads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.Model = v.GetString("gemini.model")
	cfg.Gemini.BaseURL = v.GetString("gemini.base_url")
	cfg.Gemini.CredentialsPath = v.GetString("gemini.credentials_path")
	if creds := v.GetString("google_application_credentials"); creds != "" && cfg.Gemini.CredentialsPath == "" {
		cfg.Gemini.CredentialsPath = creds
	}

	// Security
	cfg.Security.RateLimitPerMin = v.GetInt("security.rate_limit_per_min")

	cfg.Security.AllowedIPs = splitList(v.GetStringSlice("security.allowed_ips"))
	cfg.Security.TrustedProxies = splitList(v.GetStringSlice("security.trusted_proxies"))

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitList flattens comma-separated entries, since viper does not split
// list values that come from env.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("security.rate_limit_per_min", 60)
}

func (c *Config) validate() error {
	switch model.Environment(c.Environment.Name) {
	case model.EnvironmentDevelopment, model.EnvironmentStaging, model.EnvironmentProduction:
	default:
		return fmt.Errorf("environment.name must be development, staging or production: %q", c.Environment.Name)
	}
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", c.HTTPServer.Port)
	}
	if c.Security.RateLimitPerMin < 0 {
		return fmt.Errorf("security.rate_limit_per_min must not be negative")
	}
	return nil
}
