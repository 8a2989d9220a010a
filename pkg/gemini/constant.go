package gemini

import "time"

const (
	// DefaultAPIURL is the Google AI Studio endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1"

	// VertexAPIURL is the Vertex AI publisher endpoint for Google models.
	VertexAPIURL = "https://aiplatform.googleapis.com/v1/publishers/google/models"

	// VertexHost identifies the Vertex endpoint family.
	VertexHost = "aiplatform.googleapis.com"

	// DefaultTimeout applies to every request made by a Client.
	DefaultTimeout = 300 * time.Second

	// DefaultModel is used when the caller configures none.
	DefaultModel = Gemini3FlashPreview

	// APIKeyPageURL is where users create AI Studio keys.
	APIKeyPageURL = "https://aistudio.google.com/apikey"

	modelResourcePrefix = "models/"
)

// Known model identifiers.
const (
	Gemini25Flash       = "gemini-2.5-flash"
	Gemini25FlashLite   = "gemini-2.5-flash-lite"
	Gemini3FlashPreview = "gemini-3-flash-preview"
	Gemini30Flash       = "gemini-3.0-flash"
	Gemini30Pro         = "gemini-3.0-pro"
	Gemini31Flash       = "gemini-3.1-flash"
	Gemini31Pro         = "gemini-3.1-pro"
)

const roleUser = "user"

// Generation method names as listed in ModelInfo.SupportedGenerationMethods.
const (
	MethodGenerateContent       = "generateContent"
	MethodStreamGenerateContent = "streamGenerateContent"
)
