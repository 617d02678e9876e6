// Package mailer implements the outbound email pipeline: credential
// precedence, per-client rate limiting, field validation, payload
// normalization, attachment encoding, and dispatch through the Resend
// delivery provider. It also provides the standalone credential check
// that probes the provider without sending mail.
//
// The pipeline never retries: a provider error is surfaced immediately,
// once, classified by the package's sentinel errors.
package mailer
