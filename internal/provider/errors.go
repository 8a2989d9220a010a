package provider

import "errors"

var (
	ErrEmptyPrompt = errors.New("prompt is required")
	ErrEmptyModel  = errors.New("model is required")
)
