// Package providers holds the configuration structs for the concrete LLM
// provider adapters.
package providers

import "time"

// GeminiConfig configures the Google Gemini adapter.
type GeminiConfig struct {
	// APIKey is the Google AI Studio API key (x-goog-api-key).
	APIKey string `yaml:"api_key" env:"API_KEY"`
	// Model is the default model, e.g. "gemini-2.0-flash-exp".
	Model string `yaml:"model" env:"MODEL"`
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string `yaml:"base_url" env:"BASE_URL"`
	// Timeout bounds a single completion round-trip.
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`
	// RequestsPerMinute throttles outgoing calls client-side. Zero disables
	// the limiter. Free-tier keys are quota-limited, and the agents' fallback
	// copy is what users see once the quota runs out.
	RequestsPerMinute int `yaml:"requests_per_minute" env:"REQUESTS_PER_MINUTE"`
}
