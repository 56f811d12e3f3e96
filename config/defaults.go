package config

import (
	"time"

	"github.com/monjearse/eda-app/providers"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server:   DefaultServerConfig(),
		Gemini:   DefaultGeminiConfig(),
		Database: DefaultDatabaseConfig(),
		History:  DefaultHistoryConfig(),
		Agents:   AgentsConfig{},
		Log:      DefaultLogConfig(),
	}
}

// DefaultServerConfig returns the default HTTP server configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		HTTPPort:        8080,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    5 * time.Minute,
		ShutdownTimeout: 15 * time.Second,
	}
}

// DefaultGeminiConfig returns the default collaborator configuration.
func DefaultGeminiConfig() providers.GeminiConfig {
	return providers.GeminiConfig{
		Model:             "gemini-2.0-flash-exp",
		Timeout:           2 * time.Minute,
		RequestsPerMinute: 10,
	}
}

// DefaultDatabaseConfig returns the default history database location.
func DefaultDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{Path: "qa_history.db"}
}

// DefaultHistoryConfig returns the default history window.
func DefaultHistoryConfig() HistoryConfig {
	return HistoryConfig{Limit: 20}
}

// DefaultLogConfig returns the default logging configuration.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:            "info",
		Format:           "json",
		OutputPaths:      []string{"stdout"},
		EnableCaller:     true,
		EnableStacktrace: false,
	}
}
