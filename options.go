package postwave

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const defaultBaseURL = "https://api.postwave.dev"

// MaxBatchSize is the largest number of emails SendBatch accepts.
const MaxBatchSize = 100

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// sendConfig holds per-call configuration for send operations.
type sendConfig struct {
	idempotencyKey string
}

// fileConfig holds configuration for local-file attachments.
type fileConfig struct {
	filename string
	fs       afero.Fs
}

// Option configures the client.
type Option func(*clientConfig)

// SendOption configures a single send or batch-send call.
type SendOption func(*sendConfig)

// FileOption configures AttachmentFromFile.
type FileOption func(*fileConfig)

// EmailOption configures an email request at construction.
type EmailOption func(*Email)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The client must support
// concurrent in-flight requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout on the default HTTP client.
// Without it, the transport's defaults apply.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithIdempotencyKey sets the Idempotency-Key header for one call, so a
// caller's external retry of the same request is not delivered twice.
func WithIdempotencyKey(key string) SendOption {
	return func(c *sendConfig) {
		c.idempotencyKey = key
	}
}

// NewIdempotencyKey generates a fresh idempotency key.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

// WithFilename overrides the filename derived from the file path.
func WithFilename(name string) FileOption {
	return func(c *fileConfig) {
		c.filename = name
	}
}

// WithFS sets the filesystem used to read the file. Passing nil models a
// platform without a local filesystem.
func WithFS(fs afero.Fs) FileOption {
	return func(c *fileConfig) {
		c.fs = fs
	}
}

// WithHTML sets the HTML body.
func WithHTML(html string) EmailOption {
	return func(e *Email) {
		e.html = html
	}
}

// WithText sets the plain-text body.
func WithText(text string) EmailOption {
	return func(e *Email) {
		e.text = text
	}
}

// WithBCC sets the blind-carbon-copy addresses.
func WithBCC(addresses ...string) EmailOption {
	return func(e *Email) {
		e.bcc = append([]string(nil), addresses...)
	}
}

// WithCC sets the carbon-copy addresses.
func WithCC(addresses ...string) EmailOption {
	return func(e *Email) {
		e.cc = append([]string(nil), addresses...)
	}
}

// WithReplyTo sets the reply-to addresses.
func WithReplyTo(addresses ...string) EmailOption {
	return func(e *Email) {
		e.replyTo = append([]string(nil), addresses...)
	}
}

// WithAttachments sets the attachments.
func WithAttachments(attachments ...*Attachment) EmailOption {
	return func(e *Email) {
		e.attachments = append([]*Attachment(nil), attachments...)
	}
}

// WithScheduledAt defers delivery to a future time, expressed as an
// ISO-8601 timestamp or a natural-language relative expression such as
// "in 1 hour". The expression is evaluated by the remote API.
func WithScheduledAt(scheduledAt string) EmailOption {
	return func(e *Email) {
		e.scheduledAt = scheduledAt
	}
}
