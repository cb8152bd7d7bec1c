package classifier

import (
	"os"
	"strconv"
	"strings"
)

// Backend identifies which classifier implementation to use.
type Backend string

const (
	// BackendLocal talks to a local text-classification inference server.
	BackendLocal Backend = "local"
	// BackendOpenAI scores emotions through the OpenAI API with a
	// structured-output schema.
	BackendOpenAI Backend = "openai"
)

// Config holds all configuration for the classifier subsystem.
type Config struct {
	Backend    Backend
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	// Labels is the closed emotion vocabulary, fixed at startup. The
	// underlying model determines the actual set; this default matches
	// the distilroberta emotion checkpoint.
	Labels []string
}

// DefaultLabels returns the emotion vocabulary of the default model.
func DefaultLabels() []string {
	return []string{"sadness", "fear", "anger", "joy", "surprise", "neutral"}
}

// DefaultConfig returns a Config with sensible defaults: the local
// backend against an inference server on localhost.
func DefaultConfig() Config {
	return Config{
		Backend:    BackendLocal,
		Endpoint:   "http://localhost:8080",
		Model:      "j-hartmann/emotion-english-distilroberta-base",
		TimeoutMs:  10000,
		MaxRetries: 1,
		LogCalls:   false,
		Labels:     DefaultLabels(),
	}
}

// LoadConfig reads classifier configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("MINDGUARD_BACKEND"); v != "" {
		switch Backend(strings.ToLower(v)) {
		case BackendLocal, BackendOpenAI:
			cfg.Backend = Backend(strings.ToLower(v))
		}
	}
	if v := os.Getenv("MINDGUARD_ENDPOINT"); v != "" {
		cfg.Endpoint = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("MINDGUARD_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("MINDGUARD_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("MINDGUARD_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("MINDGUARD_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MINDGUARD_LABELS"); v != "" {
		labels := splitCSV(v)
		if len(labels) > 0 {
			cfg.Labels = labels
		}
	}

	return cfg
}

func splitCSV(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
