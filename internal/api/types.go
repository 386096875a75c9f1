package api

// SendEmailResponse represents the POST /emails response.
type SendEmailResponse struct {
	ID string `json:"id"`
}

// BatchResponse represents the POST /emails/batch response.
type BatchResponse struct {
	Data []SendEmailResponse `json:"data"`
}

// UpdateEmailParams represents the PATCH /emails/{id} request body.
type UpdateEmailParams struct {
	ScheduledAt string `json:"scheduled_at"`
}

// UpdateEmailResponse represents the PATCH /emails/{id} response.
type UpdateEmailResponse struct {
	ID     string `json:"id"`
	Object string `json:"object"`
}

// CancelEmailResponse represents the POST /emails/{id}/cancel response.
type CancelEmailResponse struct {
	ID     string `json:"id"`
	Object string `json:"object"`
}

// EmailResponse represents the GET /emails/{id} response.
type EmailResponse struct {
	ID          string   `json:"id"`
	Object      string   `json:"object"`
	From        string   `json:"from"`
	To          []string `json:"to"`
	Bcc         []string `json:"bcc"`
	Cc          []string `json:"cc"`
	ReplyTo     []string `json:"reply_to"`
	Subject     string   `json:"subject"`
	HTML        string   `json:"html"`
	Text        string   `json:"text"`
	CreatedAt   string   `json:"created_at"`
	ScheduledAt string   `json:"scheduled_at"`
	LastEvent   string   `json:"last_event"`
}
