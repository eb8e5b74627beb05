package llm

import (
	"errors"
	"log/slog"
)

// CallEvent records metadata about a single provider invocation.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about provider calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// SlogObserver writes provider call events to a structured logger.
type SlogObserver struct {
	log *slog.Logger
}

// NewSlogObserver creates an Observer that logs events via log.
func NewSlogObserver(log *slog.Logger) *SlogObserver {
	return &SlogObserver{log: log}
}

func (o *SlogObserver) OnCallComplete(event CallEvent) {
	if event.Success {
		o.log.Info("provider call",
			"task", string(event.Task),
			"model", event.Model,
			"latency_ms", event.LatencyMs)
		return
	}
	o.log.Warn("provider call failed",
		"task", string(event.Task),
		"model", event.Model,
		"latency_ms", event.LatencyMs,
		"error_code", event.ErrorCode)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

func errorCode(err error) string {
	var upstream *UpstreamError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConfigured):
		return "NOT_CONFIGURED"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.As(err, &upstream):
		return "UPSTREAM"
	default:
		return "UNKNOWN"
	}
}
