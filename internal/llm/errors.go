package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAPIKey indicates no API credential is configured. The request
	// is never sent; callers should surface this immediately.
	ErrNoAPIKey = errors.New("no API key configured (set OPENROUTER_API_KEY)")

	// ErrNetwork indicates a transport-level failure (DNS, connection
	// reset, timeout) while talking to the completion provider.
	ErrNetwork = errors.New("network error calling completion provider")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid model output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("completion retry attempts exhausted")
)

// UpstreamError is a non-success HTTP response from the completion
// provider. It carries the status code and response body so the caller
// can distinguish credential problems from provider outages.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion provider returned status %d: %s", e.Status, e.Body)
}

// Retryable reports whether the failure class is transient: 5xx only.
// 4xx responses (bad request, bad credential) will fail the same way
// again and are never retried.
func (e *UpstreamError) Retryable() bool {
	return e.Status >= 500
}
