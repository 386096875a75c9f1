package postwave

import (
	"context"
	"fmt"
	"sync"

	"github.com/postwave/client-go/internal/api"
)

// Client is the Postwave API client. It holds the API key, the base URL,
// and one HTTP transport handle acquired at construction; Close releases
// the transport when the client is no longer needed.
//
// All operations are safe for concurrent use. Each issues exactly one
// HTTP call and surfaces every failure to the caller immediately; the
// client never retries.
type Client struct {
	apiClient *api.Client

	mu     sync.RWMutex
	closed bool
}

// New creates a new Postwave client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     apiKey,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
	})
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// SentEmail is the result of SendEmail, ScheduleEmail, and each element
// of a batch send.
type SentEmail struct {
	ID string
}

// UpdatedEmail is the result of RescheduleEmail.
type UpdatedEmail struct {
	ID     string
	Object string
}

// CanceledEmail is the result of CancelEmail.
type CanceledEmail struct {
	ID     string
	Object string
}

// BatchResult is the result of SendBatch.
type BatchResult struct {
	Data []SentEmail
}

// RetrievedEmail is the full email resource returned by GetEmail.
type RetrievedEmail struct {
	ID          string
	Object      string
	From        string
	To          []string
	BCC         []string
	CC          []string
	ReplyTo     []string
	Subject     string
	HTML        string
	Text        string
	CreatedAt   string
	ScheduledAt string
	LastEvent   string
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// requestOptions translates public send options into API request options.
func requestOptions(opts []SendOption) []api.RequestOption {
	cfg := &sendConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	var reqOpts []api.RequestOption
	if cfg.idempotencyKey != "" {
		reqOpts = append(reqOpts, api.WithIdempotencyKey(cfg.idempotencyKey))
	}
	return reqOpts
}

// SendEmail sends a single email.
func (c *Client) SendEmail(ctx context.Context, email *Email, opts ...SendOption) (*SentEmail, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	resp, err := c.apiClient.SendEmail(ctx, email, requestOptions(opts)...)
	if err != nil {
		return nil, wrapError(err)
	}
	return &SentEmail{ID: resp.ID}, nil
}

// ScheduleEmail sends an email with deferred delivery. It fails with a
// *ValidationError, before any network call, when the email has no
// scheduled time.
func (c *Client) ScheduleEmail(ctx context.Context, email *Email, opts ...SendOption) (*SentEmail, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if email.ScheduledAt() == "" {
		return nil, &ValidationError{Message: "scheduled email requires a scheduled time"}
	}

	resp, err := c.apiClient.SendEmail(ctx, email, requestOptions(opts)...)
	if err != nil {
		return nil, wrapError(err)
	}
	return &SentEmail{ID: resp.ID}, nil
}

// RescheduleEmail moves a scheduled email to a new delivery time.
func (c *Client) RescheduleEmail(ctx context.Context, emailID, scheduledAt string) (*UpdatedEmail, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	resp, err := c.apiClient.UpdateEmail(ctx, emailID, api.UpdateEmailParams{ScheduledAt: scheduledAt})
	if err != nil {
		return nil, wrapError(err)
	}
	return &UpdatedEmail{ID: resp.ID, Object: resp.Object}, nil
}

// CancelEmail cancels a scheduled email.
func (c *Client) CancelEmail(ctx context.Context, emailID string) (*CanceledEmail, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	resp, err := c.apiClient.CancelEmail(ctx, emailID)
	if err != nil {
		return nil, wrapError(err)
	}
	return &CanceledEmail{ID: resp.ID, Object: resp.Object}, nil
}

// SendBatch submits up to MaxBatchSize emails in one API call. Larger
// batches fail with a *ValidationError before any network I/O; there are
// no partial submissions.
func (c *Client) SendBatch(ctx context.Context, emails []*Email, opts ...SendOption) (*BatchResult, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if len(emails) > MaxBatchSize {
		return nil, &ValidationError{Message: fmt.Sprintf("batch size %d exceeds the maximum of %d", len(emails), MaxBatchSize)}
	}
	if emails == nil {
		emails = []*Email{}
	}

	resp, err := c.apiClient.SendBatch(ctx, emails, requestOptions(opts)...)
	if err != nil {
		return nil, wrapError(err)
	}

	result := &BatchResult{Data: make([]SentEmail, 0, len(resp.Data))}
	for _, item := range resp.Data {
		result.Data = append(result.Data, SentEmail{ID: item.ID})
	}
	return result, nil
}

// GetEmail retrieves a single email by ID.
func (c *Client) GetEmail(ctx context.Context, emailID string) (*RetrievedEmail, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	resp, err := c.apiClient.GetEmail(ctx, emailID)
	if err != nil {
		return nil, wrapError(err)
	}
	return &RetrievedEmail{
		ID:          resp.ID,
		Object:      resp.Object,
		From:        resp.From,
		To:          resp.To,
		BCC:         resp.Bcc,
		CC:          resp.Cc,
		ReplyTo:     resp.ReplyTo,
		Subject:     resp.Subject,
		HTML:        resp.HTML,
		Text:        resp.Text,
		CreatedAt:   resp.CreatedAt,
		ScheduledAt: resp.ScheduledAt,
		LastEvent:   resp.LastEvent,
	}, nil
}

// Close releases the transport handle. The client cannot be used after
// Close; subsequent operations fail with ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.apiClient.CloseIdleConnections()
	return nil
}
