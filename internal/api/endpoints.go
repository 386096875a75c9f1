package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// RequestOption adds headers to a single request.
type RequestOption func(http.Header)

// WithIdempotencyKey sets the Idempotency-Key header.
func WithIdempotencyKey(key string) RequestOption {
	return func(h http.Header) {
		h.Set("Idempotency-Key", key)
	}
}

func buildHeaders(opts []RequestOption) http.Header {
	if len(opts) == 0 {
		return nil
	}
	header := make(http.Header)
	for _, opt := range opts {
		opt(header)
	}
	return header
}

// SendEmail submits a single email for delivery.
func (c *Client) SendEmail(ctx context.Context, body any, opts ...RequestOption) (*SendEmailResponse, error) {
	var result SendEmailResponse
	if err := c.DoWithHeaders(ctx, http.MethodPost, "/emails", body, &result, buildHeaders(opts)); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendBatch submits up to the batch limit of emails in one call.
func (c *Client) SendBatch(ctx context.Context, body any, opts ...RequestOption) (*BatchResponse, error) {
	var result BatchResponse
	if err := c.DoWithHeaders(ctx, http.MethodPost, "/emails/batch", body, &result, buildHeaders(opts)); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateEmail reschedules a previously scheduled email.
func (c *Client) UpdateEmail(ctx context.Context, emailID string, params UpdateEmailParams) (*UpdateEmailResponse, error) {
	path := fmt.Sprintf("/emails/%s", url.PathEscape(emailID))
	var result UpdateEmailResponse
	if err := c.Do(ctx, http.MethodPatch, path, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CancelEmail cancels a scheduled email.
func (c *Client) CancelEmail(ctx context.Context, emailID string) (*CancelEmailResponse, error) {
	path := fmt.Sprintf("/emails/%s/cancel", url.PathEscape(emailID))
	var result CancelEmailResponse
	if err := c.Do(ctx, http.MethodPost, path, struct{}{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetEmail retrieves a single email by ID.
func (c *Client) GetEmail(ctx context.Context, emailID string) (*EmailResponse, error) {
	path := fmt.Sprintf("/emails/%s", url.PathEscape(emailID))
	var result EmailResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
