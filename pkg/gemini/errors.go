package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidAPIKey is returned for an empty key at construction and for
	// 401 responses.
	ErrInvalidAPIKey = errors.New("gemini: invalid API key")

	// ErrModelNotFound matches any *ModelNotFoundError via errors.Is.
	ErrModelNotFound = errors.New("gemini: model not found")
)

// ModelNotFoundError is returned when the provider answers 404 for a model.
// Model is the identifier exactly as the caller passed it.
type ModelNotFoundError struct {
	Model string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("gemini: model not found: %s", e.Model)
}

func (e *ModelNotFoundError) Is(target error) bool {
	return target == ErrModelNotFound
}

// HTTPError covers transport failures (Err set) and non-2xx responses that
// have no more specific classification (StatusCode and Body set).
type HTTPError struct {
	StatusCode int
	Body       string
	API        *APIError
	Err        error
}

func (e *HTTPError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("gemini: HTTP request failed: %v", e.Err)
	case e.API != nil:
		return fmt.Sprintf("gemini: HTTP status %d: %s", e.StatusCode, e.API.Message)
	default:
		return fmt.Sprintf("gemini: HTTP status %d: %s", e.StatusCode, e.Body)
	}
}

func (e *HTTPError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	if e.API != nil {
		return e.API
	}
	return nil
}

// JSONError wraps (de)serialization failures.
type JSONError struct {
	Err error
}

func (e *JSONError) Error() string {
	return fmt.Sprintf("gemini: JSON error: %v", e.Err)
}

func (e *JSONError) Unwrap() error {
	return e.Err
}

// APIError is the error payload the provider returns in non-2xx bodies.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d (%s): %s", e.Code, e.Status, e.Message)
}

// parseAPIError extracts {"error": {...}} from body. Returns nil when the
// body is not a provider error document.
func parseAPIError(body []byte) *APIError {
	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	if envelope.Error == nil || envelope.Error.Message == "" {
		return nil
	}
	return envelope.Error
}
