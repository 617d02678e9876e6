package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/starprince/maildesk/pkg/logger"
	"github.com/starprince/maildesk/pkg/ratelimit"
	"github.com/starprince/maildesk/pkg/validator"
)

// maxSubjectLen caps the subject field length in characters.
const maxSubjectLen = 200

// SendInput carries the raw form fields of a send request. Address fields
// are comma-separated strings exactly as entered; normalization happens
// inside the pipeline after validation.
type SendInput struct {
	To          string
	Cc          string
	Bcc         string
	Subject     string
	Body        string
	HTML        string
	FromTitle   string
	Attachments []Attachment
}

// DeliveryResult is the pipeline's terminal output on success.
type DeliveryResult struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// SentEmail describes a successfully dispatched message for observers
// such as the sent-folder recorder.
type SentEmail struct {
	ID      string
	From    string
	To      []string
	Cc      []string
	Bcc     []string
	Subject string
	Body    string
	HTML    string
}

// Service orchestrates the send pipeline and the credential check.
type Service struct {
	cfg      Config
	limiter  ratelimit.Limiter
	provider ProviderFactory
	recorder func(SentEmail)
	log      *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithProviderFactory sets the delivery provider constructor.
func WithProviderFactory(f ProviderFactory) Option {
	return func(s *Service) {
		if f != nil {
			s.provider = f
		}
	}
}

// WithSentRecorder registers an observer invoked after each successful
// dispatch, e.g. to record the message in a local sent view.
func WithSentRecorder(fn func(SentEmail)) Option {
	return func(s *Service) {
		if fn != nil {
			s.recorder = fn
		}
	}
}

// WithLogger sets the logger used for send diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates the send-pipeline service. The limiter is required;
// the provider defaults to the Resend client.
func NewService(cfg Config, limiter ratelimit.Limiter, opts ...Option) *Service {
	if limiter == nil {
		panic("mailer.NewService: limiter is required")
	}

	s := &Service{
		cfg:      cfg,
		limiter:  limiter,
		provider: NewResendProvider,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send runs the pipeline: credential precedence, rate check, validation,
// normalization, attachment encoding, dispatch. Each step short-circuits
// with a classified error; no step is retried.
func (s *Service) Send(ctx context.Context, in SendInput, apiKey, clientID string) (*DeliveryResult, error) {
	key := apiKey
	if key == "" {
		key = s.cfg.DefaultAPIKey
	}
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	result, err := s.limiter.Allow(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("check rate limit: %w", err)
	}
	if !result.Allowed {
		s.log.WarnContext(ctx, "send rate limited",
			logger.Component("mailer"),
			logger.ClientID(clientID),
		)
		return nil, ErrRateLimited
	}

	if err := s.validate(in); err != nil {
		return nil, err
	}

	msg := s.buildMessage(in)

	id, err := s.provider(key).Send(ctx, msg)
	if err != nil {
		s.log.ErrorContext(ctx, "provider send failed",
			logger.Component("mailer"),
			logger.ClientID(clientID),
			logger.Error(err),
		)
		return nil, err
	}

	s.log.InfoContext(ctx, "email sent",
		logger.Component("mailer"),
		logger.MessageID(id),
		slog.Int("recipients", len(msg.To)),
	)

	if s.recorder != nil {
		s.recorder(SentEmail{
			ID:      id,
			From:    msg.From,
			To:      msg.To,
			Cc:      msg.Cc,
			Bcc:     msg.Bcc,
			Subject: msg.Subject,
			Body:    in.Body,
			HTML:    msg.HTML,
		})
	}

	return &DeliveryResult{ID: id, Message: "Email sent successfully"}, nil
}

// ValidateAPIKey checks a candidate credential against the provider
// without sending mail. Structurally invalid candidates fail fast with no
// network call.
func (s *Service) ValidateAPIKey(ctx context.Context, candidate string) error {
	if strings.TrimSpace(candidate) == "" {
		return ErrMissingAPIKey
	}
	if !strings.HasPrefix(candidate, APIKeyPrefix) {
		return ErrMalformedAPIKey
	}
	return s.provider(candidate).VerifyKey(ctx)
}

// validate applies every field rule and the server-side aggregate
// attachment cap, returning all violations at once.
func (s *Service) validate(in SendInput) error {
	return validator.Apply(
		validator.EmailList("to", in.To),
		validator.OptionalEmailList("cc", in.Cc),
		validator.OptionalEmailList("bcc", in.Bcc),
		validator.RequiredString("subject", in.Subject),
		validator.MaxLenString("subject", in.Subject, maxSubjectLen),
		validator.RequiredString("body", in.Body),
		maxAttachmentSize("attachments", in.Attachments, s.cfg.MaxAttachmentBytes),
	)
}

// buildMessage normalizes validated input into the provider payload.
// Cc/Bcc lists are set only when non-empty so the wire payload omits the
// fields rather than sending empty lists. Addresses are carried exactly as
// entered; the to/cc/bcc lists are not deduplicated against each other.
func (s *Service) buildMessage(in SendInput) *Message {
	title := strings.TrimSpace(in.FromTitle)
	if title == "" {
		title = s.cfg.SenderName
	}

	html := in.HTML
	if html == "" {
		html = TextToHTML(in.Body)
	}

	msg := &Message{
		From:        fmt.Sprintf("%s <%s>", title, s.cfg.SenderEmail),
		To:          validator.SplitAddressList(in.To),
		Subject:     in.Subject,
		HTML:        html,
		Attachments: in.Attachments,
	}
	if cc := validator.SplitAddressList(in.Cc); len(cc) > 0 {
		msg.Cc = cc
	}
	if bcc := validator.SplitAddressList(in.Bcc); len(bcc) > 0 {
		msg.Bcc = bcc
	}
	return msg
}

// maxAttachmentSize enforces the aggregate attachment cap at the trust
// boundary; the composer UI applies the same cap before submission but is
// not authoritative.
func maxAttachmentSize(field string, attachments []Attachment, maxBytes int64) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			if maxBytes <= 0 {
				return true
			}
			var total int64
			for _, att := range attachments {
				total += int64(len(att.Content))
			}
			return total <= maxBytes
		},
		Error: validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("attachments must not exceed %d bytes in total", maxBytes),
		},
	}
}
