package gemini

import "strings"

// ModelName is a model identifier held in bare form, e.g. "gemini-2.5-flash".
type ModelName string

// ParseModelName accepts either the bare or the "models/..." resource form.
func ParseModelName(s string) ModelName {
	return ModelName(strings.TrimPrefix(s, modelResourcePrefix))
}

// Bare returns the identifier without the resource prefix.
func (m ModelName) Bare() string {
	return string(m)
}

// Resource returns the identifier as a "models/..." resource path.
func (m ModelName) Resource() string {
	return modelResourcePrefix + string(m)
}

func (m ModelName) String() string {
	return string(m)
}

// IsGeminiModel reports whether name looks like a Gemini model id.
func IsGeminiModel(name string) bool {
	if strings.HasPrefix(name, "gemini-") {
		return true
	}
	switch name {
	case Gemini30Flash, Gemini30Pro, Gemini31Flash, Gemini31Pro:
		return true
	}
	return false
}
