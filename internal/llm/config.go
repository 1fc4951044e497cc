package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	TaskTravelStyle  TaskType = "travel_style"
	TaskDestinations TaskType = "destinations"
	TaskTripPlan     TaskType = "trip_plan"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int  // overrides global if > 0
	WebSearch   bool // attach the provider's web-search plugin
}

// Config holds all configuration for the completion subsystem.
type Config struct {
	APIKey     string
	Endpoint   string
	Model      string
	Referer    string
	Title      string
	LogCalls   bool
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with production defaults. The API key
// is intentionally left empty; it comes from the environment.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://openrouter.ai/api/v1",
		Model:      "google/gemini-3-flash-preview",
		Referer:    "https://fara.travel",
		Title:      "Fara Travel Planner",
		LogCalls:   false,
		TimeoutMs:  120000,
		MaxRetries: 2,
		Tasks: map[TaskType]TaskConfig{
			TaskTravelStyle:  {Temperature: 0.7, MaxTokens: 4096, WebSearch: false},
			TaskDestinations: {Temperature: 0.7, MaxTokens: 4096, WebSearch: true},
			TaskTripPlan:     {Temperature: 0.7, MaxTokens: 4096, WebSearch: true},
		},
	}
}

// LoadConfig reads completion configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("OPENROUTER_API_KEY")

	if v := os.Getenv("FINDTRAVEL_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("FINDTRAVEL_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("FINDTRAVEL_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FINDTRAVEL_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("FINDTRAVEL_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}

// TaskTimeout returns the effective timeout in milliseconds for a task.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
