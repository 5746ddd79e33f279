package genai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("MENTORA_API_KEY", "")
	t.Setenv("MENTORA_ENDPOINT", "")
	t.Setenv("MENTORA_MODEL", "")

	cfg := LoadConfig()
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Endpoint)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 60000, cfg.TimeoutMs)
	assert.False(t, cfg.LogCalls)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MENTORA_API_KEY", "secret")
	t.Setenv("MENTORA_ENDPOINT", "http://localhost:9999")
	t.Setenv("MENTORA_MODEL", "gemini-test")
	t.Setenv("MENTORA_TIMEOUT_MS", "1234")
	t.Setenv("MENTORA_LOG_CALLS", "true")

	cfg := LoadConfig()
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999", cfg.Endpoint)
	assert.Equal(t, "gemini-test", cfg.Model)
	assert.Equal(t, 1234, cfg.TimeoutMs)
	assert.True(t, cfg.LogCalls)
}

func TestLoadConfig_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("MENTORA_TIMEOUT_MS", "not-a-number")
	cfg := LoadConfig()
	assert.Equal(t, 60000, cfg.TimeoutMs)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)

	cfg.APIKey = "secret"
	require.NoError(t, cfg.Validate())
}

func TestConfig_TaskTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 5000
	cfg.Tasks[TaskSummary] = TaskConfig{TimeoutMs: 0}

	assert.Equal(t, 5000, cfg.TaskTimeout(TaskSummary), "zero task timeout falls back to global")
	assert.Equal(t, 120000, cfg.TaskTimeout(TaskModule))
	assert.Equal(t, 5000, cfg.TaskTimeout(Task("unknown")))
}
