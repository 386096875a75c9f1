package api

import (
	"net/http"
	"strconv"
	"time"
)

// classifyResponse maps a non-2xx HTTP response to a typed error.
// It is a pure function of the status code, body, and headers; the
// messages for 400/401/403/404/429 are fixed by the API contract.
func classifyResponse(statusCode int, body []byte, header http.Header) error {
	switch statusCode {
	case http.StatusBadRequest:
		return &APIError{StatusCode: statusCode, Message: "Bad request"}
	case http.StatusUnauthorized:
		return &APIError{StatusCode: statusCode, Message: "Missing API key"}
	case http.StatusForbidden:
		return &APIError{StatusCode: statusCode, Message: "Invalid API key"}
	case http.StatusNotFound:
		return &APIError{StatusCode: statusCode, Message: "Resource not found"}
	case http.StatusTooManyRequests:
		return &RateLimitError{
			APIError:   APIError{StatusCode: statusCode, Message: "Rate limit exceeded"},
			RetryAfter: parseRetryAfter(header),
		}
	default:
		return &APIError{StatusCode: statusCode, Message: "Server error: " + string(body)}
	}
}

// parseRetryAfter reads a delay-seconds Retry-After header.
// The HTTP-date form is not used by the API and is ignored.
func parseRetryAfter(header http.Header) time.Duration {
	value := header.Get("Retry-After")
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
