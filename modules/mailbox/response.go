package mailbox

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/starprince/maildesk/pkg/logger"
	"github.com/starprince/maildesk/pkg/mailer"
	"github.com/starprince/maildesk/pkg/validator"
)

// successResponse is the envelope for successful API responses.
type successResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// errorResponse is the envelope for failed API responses.
type errorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError classifies a pipeline error into an HTTP status and a
// structured body. Validation failures carry per-field detail so the
// caller can correct input; provider-side failures stay generic and the
// specifics go to the server log only.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := http.StatusInternalServerError
	message := "An unexpected error occurred"
	var details map[string][]string

	switch {
	case errors.Is(err, mailer.ErrMissingAPIKey):
		status = http.StatusUnauthorized
		message = "API key is required. Please configure your Resend API key in settings."
	case errors.Is(err, mailer.ErrRateLimited):
		status = http.StatusTooManyRequests
		message = "Rate limit exceeded. Please try again later."
	case validator.IsValidationError(err):
		status = http.StatusBadRequest
		message = "Validation failed"
		details = validator.ExtractValidationErrors(err).ByField()
	case errors.Is(err, mailer.ErrProviderRejected):
		message = "Failed to send email"
	}

	log.LogAttrs(r.Context(), levelFor(status), "request failed",
		logger.Component("mailbox"),
		logger.Error(err),
		slog.Int("status_code", status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	respondJSON(w, status, errorResponse{Error: message, Details: details})
}

func levelFor(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	return slog.LevelWarn
}
