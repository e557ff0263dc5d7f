// Package gemini provides the Gemini-backed recommendation analyzer.
package gemini

import "os"

const (
	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel = "gemini-2.5-flash"
)

// Config holds configuration for the Gemini client.
type Config struct {
	APIKey string // API key for the Gemini API
	Model  string // Default model name for analysis calls
}

// LoadConfig loads Gemini configuration from environment variables.
// GOOGLE_API_KEY takes precedence over GEMINI_API_KEY, and GEMINI_MODEL
// over MODEL_NAME, matching the deployment conventions of this service.
func LoadConfig() Config {
	key := os.Getenv("GOOGLE_API_KEY")
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = os.Getenv("MODEL_NAME")
	}
	if model == "" {
		model = DefaultModel
	}
	return Config{APIKey: key, Model: model}
}
