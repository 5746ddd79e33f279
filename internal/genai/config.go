package genai

import (
	"os"
	"strconv"
)

// Task identifies the kind of generation being performed.
type Task string

const (
	TaskTranscribe Task = "transcribe"
	TaskModule     Task = "module"
	TaskSummary    Task = "summary"
	TaskIdeas      Task = "ideas"
	TaskArticle    Task = "article"
	TaskEvaluate   Task = "evaluate"
	TaskSearch     Task = "search"
	TaskImage      Task = "image"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the generative AI subsystem.
type Config struct {
	APIKey     string
	Endpoint   string
	Model      string
	ImageModel string
	TimeoutMs  int
	LogCalls   bool
	Tasks      map[Task]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults and no credential.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://generativelanguage.googleapis.com",
		Model:      "gemini-2.5-flash",
		ImageModel: "gemini-2.0-flash-preview-image-generation",
		TimeoutMs:  60000,
		LogCalls:   false,
		Tasks: map[Task]TaskConfig{
			TaskTranscribe: {Temperature: 0.2, MaxTokens: 8192, TimeoutMs: 120000},
			TaskModule:     {Temperature: 0.7, MaxTokens: 16384, TimeoutMs: 120000},
			TaskSummary:    {Temperature: 0.4, MaxTokens: 2048},
			TaskIdeas:      {Temperature: 0.8, MaxTokens: 512},
			TaskArticle:    {Temperature: 0.7, MaxTokens: 4096},
			TaskEvaluate:   {Temperature: 0.5, MaxTokens: 1024},
			TaskSearch:     {Temperature: 0.1, MaxTokens: 1024},
			TaskImage:      {Temperature: 0.9, TimeoutMs: 90000},
		},
	}
}

// LoadConfig reads configuration from environment variables, falling
// back to defaults for any unset values. The API key is the only
// required value; callers must check Validate before use.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("MENTORA_API_KEY")
	if v := os.Getenv("MENTORA_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("MENTORA_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("MENTORA_IMAGE_MODEL"); v != "" {
		cfg.ImageModel = v
	}
	if v := os.Getenv("MENTORA_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("MENTORA_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

// Validate reports whether the configuration is usable. A missing API
// key is a fatal startup condition.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// TaskTimeout returns the effective timeout for a given task.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task Task) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
