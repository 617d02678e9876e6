package mailer

import (
	"context"
	"errors"
	"strings"

	"github.com/resend/resend-go/v2"
)

// APIKeyPrefix is the format convention for Resend API keys. Candidates
// without it are rejected before any provider round-trip.
const APIKeyPrefix = "re_"

type resendProvider struct {
	client *resend.Client
}

// NewResendProvider creates a Resend-backed Provider bound to the given
// API key. Use it as the ProviderFactory for the send pipeline:
//
//	svc := mailer.NewService(cfg, limiter,
//		mailer.WithProviderFactory(mailer.NewResendProvider),
//	)
func NewResendProvider(apiKey string) Provider {
	return &resendProvider{client: resend.NewClient(apiKey)}
}

// Send dispatches the message through Resend's transactional API.
func (p *resendProvider) Send(ctx context.Context, msg *Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if len(msg.Cc) > 0 {
		params.Cc = msg.Cc
	}
	if len(msg.Bcc) > 0 {
		params.Bcc = msg.Bcc
	}
	for _, att := range msg.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename: att.Filename,
			Content:  att.Content,
		})
	}

	sent, err := p.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", errors.Join(ErrProviderRejected, err)
	}

	return sent.Id, nil
}

// VerifyKey confirms the credential by listing the account's API keys, a
// read-only call that sends no mail.
func (p *resendProvider) VerifyKey(ctx context.Context) error {
	_, err := p.client.ApiKeys.ListWithContext(ctx)
	if err == nil {
		return nil
	}

	if isUnauthorized(err) {
		return errors.Join(ErrInvalidAPIKey, err)
	}
	return errors.Join(ErrProvider, err)
}

// isUnauthorized matches the shapes Resend uses for credential rejection.
func isUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "401") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "invalid api key")
}
