package postwave

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/postwave/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrLocalFilesUnsupported is returned when local file attachments are
	// requested on a platform without a local filesystem.
	ErrLocalFilesUnsupported = errors.New("local file attachments are not supported on this platform")
)

// ValidationError indicates a local precondition was violated before any
// network call: a bad attachment source combination, a denied file
// extension, an oversized file, an oversized batch, or a missing
// scheduled time.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Message
}

// NotFoundError indicates a local file path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// Is implements errors.Is for fs.ErrNotExist matching.
func (e *NotFoundError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// APIError represents a rejected request or a transport failure.
// StatusCode is zero for transport failures, in which case Err carries
// the underlying cause.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// RateLimitError represents an HTTP 429 response. It carries the APIError
// fields so callers can read the status code and message uniformly, while
// remaining a distinct type for backoff decisions.
type RateLimitError struct {
	APIError

	// RetryAfter is the server-suggested wait before retrying,
	// zero when the Retry-After header was absent.
	RetryAfter time.Duration
}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// wrapError converts internal API errors to public errors.
// This keeps internal/api out of the exported surface and ensures
// errors.Is() and errors.As() work with the public taxonomy.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var rateErr *api.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitError{
			APIError: APIError{
				StatusCode: rateErr.StatusCode,
				Message:    rateErr.Message,
			},
			RetryAfter: rateErr.RetryAfter,
		}
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &APIError{
			Message: fmt.Sprintf("Network error: %v", netErr.Err),
			Err:     netErr.Err,
		}
	}

	return err
}
