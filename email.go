package postwave

import "encoding/json"

// Email is an immutable outbound email request. Construct one with
// NewEmail; the recipient list, sender, and subject are required, and
// everything else is set through EmailOption values. The remote API
// performs deeper validation server-side.
type Email struct {
	to          []string
	from        string
	subject     string
	bcc         []string
	cc          []string
	replyTo     []string
	html        string
	text        string
	attachments []*Attachment
	scheduledAt string
}

// NewEmail creates an email request.
func NewEmail(to []string, from, subject string, opts ...EmailOption) *Email {
	e := &Email{
		to:      append([]string(nil), to...),
		from:    from,
		subject: subject,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// To returns the recipient addresses.
func (e *Email) To() []string {
	return append([]string(nil), e.to...)
}

// From returns the sender address.
func (e *Email) From() string {
	return e.from
}

// Subject returns the subject line.
func (e *Email) Subject() string {
	return e.subject
}

// BCC returns the blind-carbon-copy addresses.
func (e *Email) BCC() []string {
	return append([]string(nil), e.bcc...)
}

// CC returns the carbon-copy addresses.
func (e *Email) CC() []string {
	return append([]string(nil), e.cc...)
}

// ReplyTo returns the reply-to addresses.
func (e *Email) ReplyTo() []string {
	return append([]string(nil), e.replyTo...)
}

// HTML returns the HTML body, or "" when unset.
func (e *Email) HTML() string {
	return e.html
}

// Text returns the plain-text body, or "" when unset.
func (e *Email) Text() string {
	return e.text
}

// Attachments returns the attachments.
func (e *Email) Attachments() []*Attachment {
	return append([]*Attachment(nil), e.attachments...)
}

// ScheduledAt returns the scheduled delivery time, or "" when unset.
// The value is an ISO-8601 timestamp or a natural-language relative
// expression; its grammar is defined and evaluated by the remote API.
func (e *Email) ScheduledAt() string {
	return e.scheduledAt
}

// emailWire is the JSON wire form of an email request. The address lists
// and attachments are always present as arrays, even when empty; the
// optional body and scheduling fields are omitted entirely when unset.
type emailWire struct {
	From        string        `json:"from"`
	To          []string      `json:"to"`
	Subject     string        `json:"subject"`
	Bcc         []string      `json:"bcc"`
	Cc          []string      `json:"cc"`
	ReplyTo     []string      `json:"reply_to"`
	HTML        string        `json:"html,omitempty"`
	Text        string        `json:"text,omitempty"`
	Attachments []*Attachment `json:"attachments"`
	ScheduledAt string        `json:"scheduled_at,omitempty"`
}

// MarshalJSON emits the wire payload described by the API contract.
func (e *Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(emailWire{
		From:        e.from,
		To:          emptyIfNil(e.to),
		Subject:     e.subject,
		Bcc:         emptyIfNil(e.bcc),
		Cc:          emptyIfNil(e.cc),
		ReplyTo:     emptyIfNil(e.replyTo),
		HTML:        e.html,
		Text:        e.text,
		Attachments: attachmentsOrEmpty(e.attachments),
		ScheduledAt: e.scheduledAt,
	})
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func attachmentsOrEmpty(a []*Attachment) []*Attachment {
	if a == nil {
		return []*Attachment{}
	}
	return a
}
