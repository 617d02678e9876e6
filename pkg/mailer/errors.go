package mailer

import "errors"

var (
	// ErrMissingAPIKey indicates no credential was supplied, neither
	// per-request nor as a configured default.
	ErrMissingAPIKey = errors.New("mailer: api key is required")

	// ErrMalformedAPIKey indicates the candidate credential does not match
	// the provider's key format; no network call was made.
	ErrMalformedAPIKey = errors.New("mailer: malformed api key")

	// ErrInvalidAPIKey indicates the provider rejected the credential.
	ErrInvalidAPIKey = errors.New("mailer: api key rejected by provider")

	// ErrRateLimited indicates the per-client send quota is exhausted.
	ErrRateLimited = errors.New("mailer: rate limit exceeded")

	// ErrProviderRejected indicates the provider declined the send.
	ErrProviderRejected = errors.New("mailer: provider rejected the message")

	// ErrProvider indicates a provider-side failure during a credential check.
	ErrProvider = errors.New("mailer: provider request failed")
)
