// Package api implements the low-level HTTP client for the Postwave API.
//
// It handles request construction, authentication headers, JSON
// encoding/decoding, and translation of HTTP responses into typed errors.
// The public SDK package wraps these errors into its exported taxonomy.
package api
