package gemini

import "errors"

var (
	// ErrMissingAPIKey is returned when no Gemini API key is configured.
	ErrMissingAPIKey = errors.New("missing_gemini_api_key: set GOOGLE_API_KEY or GEMINI_API_KEY")

	// ErrMissingDependency is returned when the Gemini client cannot be constructed.
	ErrMissingDependency = errors.New("missing_dependency: gemini client unavailable")

	// ErrInvalidModelResponse is returned when the model's response is empty
	// or not parseable as JSON.
	ErrInvalidModelResponse = errors.New("invalid_llm_response")
)
