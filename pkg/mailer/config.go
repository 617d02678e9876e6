package mailer

import "time"

// Config holds send-pipeline configuration. DefaultAPIKey is optional: a
// per-request credential always takes precedence, and with neither present
// sends fail with ErrMissingAPIKey.
type Config struct {
	DefaultAPIKey      string        `env:"RESEND_API_KEY"`
	SenderEmail        string        `env:"SENDER_EMAIL" envDefault:"mailer@starprince.dev"`
	SenderName         string        `env:"SENDER_NAME" envDefault:"Prince"`
	RateLimit          int           `env:"SEND_RATE_LIMIT" envDefault:"10"`
	RateWindow         time.Duration `env:"SEND_RATE_WINDOW" envDefault:"60s"`
	MaxAttachmentBytes int64         `env:"MAX_ATTACHMENT_BYTES" envDefault:"26214400"` // 25 MB aggregate
}
