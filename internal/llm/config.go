package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	// TaskConversational gathers event details one question at a time.
	TaskConversational TaskType = "conversational"

	// TaskPlan produces a full structured event plan.
	TaskPlan TaskType = "plan"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the provider gateway.
// It is built once at startup and injected into the client; nothing
// in this package reads ambient state after construction.
type Config struct {
	APIKey    string
	Endpoint  string
	Model     string
	TimeoutMs int
	LogCalls  bool
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults.
// The API key has no default; a client built without one fails fast
// on the first call.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "https://generativelanguage.googleapis.com",
		Model:     "gemini-2.5-flash-preview-09-2025",
		TimeoutMs: 60000,
		LogCalls:  false,
		Tasks: map[TaskType]TaskConfig{
			TaskConversational: {Temperature: 0.4, TimeoutMs: 60000},
			TaskPlan:           {Temperature: 0.2, TimeoutMs: 60000},
		},
	}
}

// LoadConfig reads gateway configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	return ApplyEnv(DefaultConfig())
}

// ApplyEnv overlays environment variables onto cfg. Unset variables leave
// the corresponding field untouched.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}

	if v := os.Getenv("EVENTFLOW_GEMINI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("EVENTFLOW_GEMINI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("EVENTFLOW_GEMINI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("EVENTFLOW_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyTaskTimeoutEnv(&cfg, TaskConversational, "EVENTFLOW_CHAT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPlan, "EVENTFLOW_PLAN_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
