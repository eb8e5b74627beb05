package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured indicates the provider API key is absent. Calls
	// fail with this before any network I/O happens.
	ErrNotConfigured = errors.New("gemini api key is not configured")

	// ErrTimeout indicates the provider request exceeded the configured timeout.
	ErrTimeout = errors.New("provider request timed out")

	// ErrInvalidOutput indicates the provider response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid provider output format")
)

// UpstreamError carries a non-2xx provider status and the raw response body.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini returned status %d: %s", e.Status, e.Body)
}
