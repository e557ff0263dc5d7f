// Package fmp provides a client for the Financial Modeling Prep stable API.
package fmp

import (
	"os"
	"time"
)

// DefaultBaseURL is the root of the FMP stable API.
const DefaultBaseURL = "https://financialmodelingprep.com/stable"

// Config holds configuration for the FMP API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads FMP configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("FMP_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("FMP_API_KEY"),
		BaseURL: base,
		Timeout: 20 * time.Second,
	}
}
