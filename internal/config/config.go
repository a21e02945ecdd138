// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables. Every provider
// credential lives here, server-side; clients never see an API key.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:19006"] (Expo dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MistralAPIKey authenticates itinerary generation. Optional: when empty
	// the /api/itinerary endpoint is disabled.
	MistralAPIKey string

	// MistralBaseURL overrides the OpenAI-compatible endpoint, mainly for
	// tests. Empty means the public Mistral API.
	MistralBaseURL string

	// MistralModel selects the completion model. Defaults to "mistral-tiny".
	MistralModel string

	// CohereAPIKey authenticates the chat assistant. Optional: when empty
	// the /api/chat endpoints are disabled.
	CohereAPIKey string

	// CohereBaseURL overrides the Cohere endpoint, mainly for tests.
	CohereBaseURL string

	// CohereModel selects the chat model. Defaults to "command-r-plus".
	CohereModel string

	// UnsplashAccessKey authenticates photo search. Optional: when empty
	// destination photos fall back to a stock image.
	UnsplashAccessKey string

	// CloudinaryCloudName and CloudinaryUploadPreset configure unsigned
	// avatar uploads. Optional: when either is empty uploads are disabled.
	CloudinaryCloudName    string
	CloudinaryUploadPreset string

	// FrankfurterBaseURL overrides the exchange-rate endpoint, mainly for
	// tests. The public API needs no key.
	FrankfurterBaseURL string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:                   getEnv("PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		CORSOrigins:            splitCSV(getEnv("CORS_ORIGINS", "http://localhost:19006")),
		MistralAPIKey:          os.Getenv("MISTRAL_API_KEY"),
		MistralBaseURL:         getEnv("MISTRAL_BASE_URL", "https://api.mistral.ai/v1"),
		MistralModel:           getEnv("MISTRAL_MODEL", "mistral-tiny"),
		CohereAPIKey:           os.Getenv("COHERE_API_KEY"),
		CohereBaseURL:          os.Getenv("COHERE_BASE_URL"),
		CohereModel:            getEnv("COHERE_MODEL", "command-r-plus"),
		UnsplashAccessKey:      os.Getenv("UNSPLASH_ACCESS_KEY"),
		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryUploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		FrankfurterBaseURL:     os.Getenv("FRANKFURTER_BASE_URL"),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
