package model

// Environment variables that may hold the Gemini API key, highest priority
// first.
const (
	EnvGoogleAIStudioKey = "GOOGLE_AI_STUDIO_KEY"
	EnvGeminiAPIKey      = "GEMINI_API_KEY"
	EnvGoogleAPIKey      = "GOOGLE_API_KEY"
)

// APIKeyEnvVars lists the key variables in lookup order.
var APIKeyEnvVars = []string{EnvGoogleAIStudioKey, EnvGeminiAPIKey, EnvGoogleAPIKey}
