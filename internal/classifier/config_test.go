package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MINDGUARD_BACKEND", "MINDGUARD_ENDPOINT", "MINDGUARD_MODEL",
		"MINDGUARD_TIMEOUT_MS", "MINDGUARD_MAX_RETRIES", "MINDGUARD_LOG_CALLS",
		"MINDGUARD_LABELS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig()
	assert.Equal(t, BackendLocal, cfg.Backend)
	assert.Equal(t, "http://localhost:8080", cfg.Endpoint)
	assert.Equal(t, "j-hartmann/emotion-english-distilroberta-base", cfg.Model)
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.False(t, cfg.LogCalls)
	assert.Equal(t, DefaultLabels(), cfg.Labels)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MINDGUARD_BACKEND", "openai")
	t.Setenv("MINDGUARD_ENDPOINT", "http://inference:9000/")
	t.Setenv("MINDGUARD_MODEL", "gpt-5-mini")
	t.Setenv("MINDGUARD_TIMEOUT_MS", "2500")
	t.Setenv("MINDGUARD_MAX_RETRIES", "0")
	t.Setenv("MINDGUARD_LOG_CALLS", "true")
	t.Setenv("MINDGUARD_LABELS", "Calm, Tense ,anger")

	cfg := LoadConfig()
	assert.Equal(t, BackendOpenAI, cfg.Backend)
	assert.Equal(t, "http://inference:9000", cfg.Endpoint, "trailing slash is trimmed")
	assert.Equal(t, "gpt-5-mini", cfg.Model)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, []string{"calm", "tense", "anger"}, cfg.Labels)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("MINDGUARD_BACKEND", "carrier-pigeon")
	t.Setenv("MINDGUARD_TIMEOUT_MS", "-5")
	t.Setenv("MINDGUARD_MAX_RETRIES", "nope")

	cfg := LoadConfig()
	assert.Equal(t, BackendLocal, cfg.Backend)
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}
