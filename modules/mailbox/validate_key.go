package mailbox

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/starprince/maildesk/pkg/mailer"
)

type validateKeyRequest struct {
	APIKey string `json:"apiKey"`
}

// handleValidateAPIKey checks a candidate credential against the provider
// without sending mail. Structurally invalid candidates are rejected
// before any provider round-trip.
func (m *Module) handleValidateAPIKey(w http.ResponseWriter, r *http.Request) {
	var req validateKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	err := m.svc.ValidateAPIKey(r.Context(), req.APIKey)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, successResponse{Success: true, Message: "API key is valid"})
	case errors.Is(err, mailer.ErrMissingAPIKey):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "API key is required"})
	case errors.Is(err, mailer.ErrMalformedAPIKey):
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Error: `Invalid API key format. Resend API keys should start with "re_"`,
		})
	case errors.Is(err, mailer.ErrInvalidAPIKey):
		respondJSON(w, http.StatusUnauthorized, errorResponse{
			Error: "Invalid API key. Please check your key and try again.",
		})
	default:
		respondError(w, r, m.log, err)
	}
}
