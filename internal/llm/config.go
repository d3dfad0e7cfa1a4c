package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of completion task being performed.
type TaskType string

const (
	TaskSchedule   TaskType = "schedule"
	TaskPrioritize TaskType = "prioritize"
	TaskConflict   TaskType = "conflict"
	TaskChat       TaskType = "chat"
)

// TaskConfig holds per-task completion parameters.
type TaskConfig struct {
	Temperature float64
}

// Config holds all configuration for the completion client.
// Model is a single fixed identifier shared by every task type and is
// deliberately not user-configurable.
type Config struct {
	BaseURL   string
	APIKey    string
	Model     string
	TimeoutMs int
	LogCalls  bool
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns a Config pointed at the Nimbus AI endpoint.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "https://api.studio.nebius.com/v1",
		Model:     "meta-llama/Meta-Llama-3.1-70B-Instruct",
		TimeoutMs: 30000,
		Tasks: map[TaskType]TaskConfig{
			TaskSchedule:   {Temperature: 0.6},
			TaskPrioritize: {Temperature: 0.4},
			TaskConflict:   {Temperature: 0.5},
			TaskChat:       {Temperature: 0.7},
		},
	}
}

// LoadConfig reads completion client configuration from environment
// variables, falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("NIMBUS_API_KEY")
	if v := os.Getenv("NIMBUS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("NIMBUS_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("NIMBUS_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

// Temperature returns the sampling temperature for a given task type.
func (c Config) Temperature(task TaskType) float64 {
	if tc, ok := c.Tasks[task]; ok {
		return tc.Temperature
	}
	return c.Tasks[TaskChat].Temperature
}
