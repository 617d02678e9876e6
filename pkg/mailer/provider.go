package mailer

import "context"

// Message is the normalized outbound payload handed to the delivery
// provider. Cc and Bcc are present only when non-empty; the wire payload
// omits them entirely otherwise.
type Message struct {
	From        string
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Attachment pairs a filename with its full byte content. Content is read
// into memory before dispatch; there is no streaming.
type Attachment struct {
	Filename string
	Content  []byte
}

// Provider is the external email-delivery service.
type Provider interface {
	// Send dispatches the message and returns the provider-assigned
	// message identifier.
	Send(ctx context.Context, msg *Message) (id string, err error)

	// VerifyKey confirms the provider accepts the credential the Provider
	// was constructed with, via a lightweight read-only call that sends
	// no mail.
	VerifyKey(ctx context.Context) error
}

// ProviderFactory builds a Provider bound to the given API key. The send
// pipeline constructs a provider per request since the credential may be
// supplied per request.
type ProviderFactory func(apiKey string) Provider
