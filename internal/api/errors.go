package api

import (
	"errors"
	"fmt"
	"time"
)

// ErrRateLimited indicates the rate limit has been exceeded.
var ErrRateLimited = errors.New("rate limit exceeded")

// APIError represents an HTTP error from the Postwave API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// RateLimitError represents an HTTP 429 response. It shares the APIError
// fields so callers can treat it as a generic API failure, while remaining
// a distinct type for backoff decisions.
type RateLimitError struct {
	APIError

	// RetryAfter is the server-suggested wait before retrying,
	// zero when the Retry-After header was absent or unparseable.
	RetryAfter time.Duration
}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// NetworkError represents a transport-level failure: DNS, connection
// refused, timeout, or a malformed response body.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
