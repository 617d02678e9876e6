package mailbox_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starprince/maildesk/modules/mailbox"
	"github.com/starprince/maildesk/pkg/clientip"
	"github.com/starprince/maildesk/pkg/inbox"
	"github.com/starprince/maildesk/pkg/mailer"
	"github.com/starprince/maildesk/pkg/ratelimit"
)

type stubProvider struct {
	mu          sync.Mutex
	sendCalls   int
	verifyCalls int
	lastKey     string
	lastMessage *mailer.Message
	sendErr     error
	verifyErr   error
}

func (p *stubProvider) factory() mailer.ProviderFactory {
	return func(apiKey string) mailer.Provider {
		p.mu.Lock()
		p.lastKey = apiKey
		p.mu.Unlock()
		return p
	}
}

func (p *stubProvider) Send(ctx context.Context, msg *mailer.Message) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sendCalls++
	p.lastMessage = msg
	if p.sendErr != nil {
		return "", p.sendErr
	}
	return "msg-1", nil
}

func (p *stubProvider) VerifyKey(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.verifyCalls++
	return p.verifyErr
}

type fixture struct {
	provider *stubProvider
	store    *inbox.Store
	handler  http.Handler
}

func newFixture(t *testing.T, cfg mailer.Config) *fixture {
	t.Helper()

	if cfg.SenderEmail == "" {
		cfg.SenderEmail = "mailer@starprince.dev"
	}
	if cfg.SenderName == "" {
		cfg.SenderName = "Prince"
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = 10
	}
	if cfg.RateWindow == 0 {
		cfg.RateWindow = time.Minute
	}

	rlStore := ratelimit.NewMemoryStore()
	t.Cleanup(func() { _ = rlStore.Close() })

	limiter, err := ratelimit.NewFixedWindow(rlStore, cfg.RateLimit, cfg.RateWindow)
	require.NoError(t, err)

	provider := &stubProvider{}
	store := inbox.NewStore(inbox.WithSeedData())

	svc := mailer.NewService(cfg, limiter,
		mailer.WithProviderFactory(provider.factory()),
		mailer.WithSentRecorder(func(e mailer.SentEmail) {
			store.RecordSent(e.From, e.To, e.Cc, e.Bcc, e.Subject, e.Body, e.HTML)
		}),
	)

	log := slog.New(slog.DiscardHandler)
	module := mailbox.New(svc, store, log)

	var handler http.Handler = module.Router()
	handler = mailbox.CredentialFromCookie(handler)
	handler = clientip.Middleware(handler)

	return &fixture{provider: provider, store: store, handler: handler}
}

func multipartBody(t *testing.T, fields map[string]string, attachments map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for name, content := range attachments {
		fw, err := mw.CreateFormFile("attachments", name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func (f *fixture) sendRequest(t *testing.T, fields map[string]string, attachments map[string][]byte, decorate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, fields, attachments)
	r := httptest.NewRequest(http.MethodPost, "/api/send-email", body)
	r.Header.Set("Content-Type", contentType)
	if decorate != nil {
		decorate(r)
	}

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, r)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func validFields() map[string]string {
	return map[string]string{
		"to":      "a@x.com, b@x.com",
		"subject": "Hi",
		"body":    "Hello",
	}
}

func TestSendEmail(t *testing.T) {
	t.Parallel()

	t.Run("success with header credential", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		w := f.sendRequest(t, validFields(), nil, func(r *http.Request) {
			r.Header.Set(mailbox.APIKeyHeader, "re_valid")
		})

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, true, body["success"])

		data := body["data"].(map[string]any)
		assert.Equal(t, "msg-1", data["id"])
		assert.Equal(t, "Email sent successfully", data["message"])

		assert.Equal(t, []string{"a@x.com", "b@x.com"}, f.provider.lastMessage.To)
		assert.Equal(t, "<p>Hello</p>", f.provider.lastMessage.HTML)
	})

	t.Run("success records to the sent folder", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		w := f.sendRequest(t, validFields(), nil, func(r *http.Request) {
			r.Header.Set(mailbox.APIKeyHeader, "re_valid")
		})
		require.Equal(t, http.StatusOK, w.Code)

		sent := f.store.List(inbox.FolderSent)
		require.Len(t, sent, 1)
		assert.Equal(t, "Hi", sent[0].Subject)
		assert.Equal(t, "Hello", sent[0].Body)
	})

	t.Run("cookie credential substitutes for the header", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		w := f.sendRequest(t, validFields(), nil, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: mailbox.APIKeyCookie, Value: "re_from_cookie"})
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "re_from_cookie", f.provider.lastKey)
	})

	t.Run("explicit header wins over the cookie", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		w := f.sendRequest(t, validFields(), nil, func(r *http.Request) {
			r.Header.Set(mailbox.APIKeyHeader, "re_header")
			r.AddCookie(&http.Cookie{Name: mailbox.APIKeyCookie, Value: "re_cookie"})
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "re_header", f.provider.lastKey)
	})

	t.Run("missing credential is 401", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		w := f.sendRequest(t, validFields(), nil, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Zero(t, f.provider.sendCalls)
	})

	t.Run("validation failure is 400 with per-field details", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		fields := map[string]string{"to": "", "subject": "", "body": ""}
		w := f.sendRequest(t, fields, nil, func(r *http.Request) {
			r.Header.Set(mailbox.APIKeyHeader, "re_valid")
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, "Validation failed", body["error"])

		details := body["details"].(map[string]any)
		assert.Contains(t, details, "to")
		assert.Contains(t, details, "subject")
		assert.Contains(t, details, "body")
		assert.Zero(t, f.provider.sendCalls)
	})

	t.Run("attachments are forwarded with their filenames", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		attachments := map[string][]byte{"notes.txt": []byte("attachment body")}
		w := f.sendRequest(t, validFields(), attachments, func(r *http.Request) {
			r.Header.Set(mailbox.APIKeyHeader, "re_valid")
		})

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, f.provider.lastMessage.Attachments, 1)
		assert.Equal(t, "notes.txt", f.provider.lastMessage.Attachments[0].Filename)
		assert.Equal(t, []byte("attachment body"), f.provider.lastMessage.Attachments[0].Content)
	})

	t.Run("oversized attachments are 400", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{MaxAttachmentBytes: 8})

		attachments := map[string][]byte{"big.bin": []byte("way too large")}
		w := f.sendRequest(t, validFields(), attachments, func(r *http.Request) {
			r.Header.Set(mailbox.APIKeyHeader, "re_valid")
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		details := decodeJSON(t, w)["details"].(map[string]any)
		assert.Contains(t, details, "attachments")
		assert.Zero(t, f.provider.sendCalls)
	})

	t.Run("eleventh send from one client is 429", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		decorate := func(r *http.Request) {
			r.Header.Set(mailbox.APIKeyHeader, "re_valid")
			r.Header.Set("X-Forwarded-For", "203.0.113.7")
		}

		for i := range 10 {
			w := f.sendRequest(t, validFields(), nil, decorate)
			require.Equal(t, http.StatusOK, w.Code, "send %d", i+1)
		}

		w := f.sendRequest(t, validFields(), nil, decorate)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, 10, f.provider.sendCalls)
	})

	t.Run("provider rejection is 500 with a generic message", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})
		f.provider.sendErr = mailer.ErrProviderRejected

		w := f.sendRequest(t, validFields(), nil, func(r *http.Request) {
			r.Header.Set(mailbox.APIKeyHeader, "re_valid")
		})

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to send email", decodeJSON(t, w)["error"])
	})
}

func TestValidateAPIKey(t *testing.T) {
	t.Parallel()

	postKey := func(t *testing.T, f *fixture, payload string) *httptest.ResponseRecorder {
		t.Helper()
		r := httptest.NewRequest(http.MethodPost, "/api/validate-api-key", bytes.NewBufferString(payload))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.handler.ServeHTTP(w, r)
		return w
	}

	t.Run("valid key", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		w := postKey(t, f, `{"apiKey":"re_valid"}`)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeJSON(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "API key is valid", body["message"])
		assert.Equal(t, 1, f.provider.verifyCalls)
	})

	t.Run("missing key is 400", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		w := postKey(t, f, `{"apiKey":""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, f.provider.verifyCalls)
	})

	t.Run("malformed key is 400 without a provider call", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		w := postKey(t, f, `{"apiKey":"sk_wrong_provider"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, f.provider.verifyCalls)
	})

	t.Run("provider-rejected key is 401", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})
		f.provider.verifyErr = mailer.ErrInvalidAPIKey

		w := postKey(t, f, `{"apiKey":"re_rejected"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("provider failure is 500", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})
		f.provider.verifyErr = mailer.ErrProvider

		w := postKey(t, f, `{"apiKey":"re_whatever"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("invalid body is 400", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		w := postKey(t, f, `{not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmailsAPI(t *testing.T) {
	t.Parallel()

	get := func(t *testing.T, f *fixture, path string) *httptest.ResponseRecorder {
		t.Helper()
		r := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		f.handler.ServeHTTP(w, r)
		return w
	}

	t.Run("inbox listing", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		w := get(t, f, "/api/emails?folder=inbox")
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeJSON(t, w)["data"].([]any)
		assert.NotEmpty(t, data)
	})

	t.Run("unknown folder falls back to inbox", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		w := get(t, f, "/api/emails?folder=spam")
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, decodeJSON(t, w)["data"].([]any))
	})

	t.Run("empty folder is an empty list, not null", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		w := get(t, f, "/api/emails?folder=sent")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeJSON(t, w)["data"].([]any))
	})

	t.Run("detail and mark read", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		listing := get(t, f, "/api/emails?folder=inbox")
		data := decodeJSON(t, listing)["data"].([]any)
		id := data[0].(map[string]any)["id"].(string)

		w := get(t, f, "/api/emails/"+id)
		require.Equal(t, http.StatusOK, w.Code)

		r := httptest.NewRequest(http.MethodPost, "/api/emails/"+id+"/read", nil)
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, r)
		require.Equal(t, http.StatusOK, rec.Code)

		email, ok := f.store.Get(id)
		require.True(t, ok)
		assert.True(t, email.Read)
	})

	t.Run("missing email is 404", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		w := get(t, f, "/api/emails/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("template catalog", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, mailer.Config{})

		w := get(t, f, "/api/templates")
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, decodeJSON(t, w)["data"].([]any))
	})
}

func TestIndexPage(t *testing.T) {
	t.Parallel()
	f := newFixture(t, mailer.Config{})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	page, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Maildesk")
}
