package mailbox

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starprince/maildesk/pkg/inbox"
	"github.com/starprince/maildesk/pkg/mailer"
)

// Module bundles the mailbox HTTP surface: the send and credential-check
// endpoints, the mock mailbox JSON API, and the UI shell.
type Module struct {
	svc   *mailer.Service
	store *inbox.Store
	log   *slog.Logger
}

// New creates the mailbox module. The mailer service and inbox store are
// required.
func New(svc *mailer.Service, store *inbox.Store, log *slog.Logger) *Module {
	if svc == nil {
		panic("mailbox.New: mailer service is required")
	}
	if store == nil {
		panic("mailbox.New: inbox store is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Module{svc: svc, store: store, log: log}
}

// Router mounts the module's routes.
func (m *Module) Router() chi.Router {
	r := chi.NewRouter()

	r.Route("/api", func(api chi.Router) {
		api.Post("/send-email", m.handleSendEmail)
		api.Post("/validate-api-key", m.handleValidateAPIKey)

		api.Get("/emails", m.handleListEmails)
		api.Get("/emails/{id}", m.handleGetEmail)
		api.Post("/emails/{id}/read", m.handleMarkRead)
		api.Get("/templates", m.handleListTemplates)
	})

	r.Get("/", m.handleIndex)

	return r
}

// Handle returns the module as an http.Handler.
func (m *Module) Handle() http.Handler {
	return m.Router()
}
