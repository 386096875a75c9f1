package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config holds configuration for the API client.
type Config struct {
	// BaseURL is the API endpoint, without a trailing slash.
	BaseURL string
	// APIKey is the bearer credential attached to every request.
	APIKey string
	// HTTPClient is the transport handle. If nil, a default client is used.
	HTTPClient *http.Client
	// Timeout, when positive, is applied to the default HTTP client.
	// It is ignored when HTTPClient is set; configure that client instead.
	Timeout time.Duration
}

// NewClient creates a new API client from the given config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// CloseIdleConnections releases idle connections held by the transport.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// Do issues a single HTTP request and decodes the response into result.
// There are no automatic retries: every failure is surfaced immediately,
// and retry policy belongs to the caller.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	return c.DoWithHeaders(ctx, method, path, body, result, nil)
}

// DoWithHeaders is Do with extra request headers.
func (c *Client) DoWithHeaders(ctx context.Context, method, path string, body, result any, extra http.Header) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, values := range extra {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return classifyResponse(resp.StatusCode, respBody, resp.Header)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &NetworkError{Err: fmt.Errorf("decode response: %w", err)}
		}
	}

	return nil
}
