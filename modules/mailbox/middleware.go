package mailbox

import "net/http"

const (
	// APIKeyHeader carries the per-request provider credential.
	APIKeyHeader = "X-Api-Key"

	// APIKeyCookie is the browser-side credential cookie. Its value is the
	// same string the settings panel keeps in local storage.
	APIKeyCookie = "resend_api_key"
)

// CredentialFromCookie copies the credential cookie into the API-key
// header for POSTs to the send endpoint, so a cookie-based credential can
// substitute for an explicit header without the handler knowing the
// source. An existing header is left untouched.
func CredentialFromCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/send-email" && r.Header.Get(APIKeyHeader) == "" {
			if cookie, err := r.Cookie(APIKeyCookie); err == nil && cookie.Value != "" {
				r.Header.Set(APIKeyHeader, cookie.Value)
			}
		}
		next.ServeHTTP(w, r)
	})
}
