package mailbox

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starprince/maildesk/pkg/inbox"
)

// handleListEmails serves a folder of the mock mailbox. Unknown folder
// values default to the inbox view.
func (m *Module) handleListEmails(w http.ResponseWriter, r *http.Request) {
	folder := inbox.Folder(r.URL.Query().Get("folder"))
	switch folder {
	case inbox.FolderInbox, inbox.FolderSent, inbox.FolderDrafts:
	default:
		folder = inbox.FolderInbox
	}

	emails := m.store.List(folder)
	if emails == nil {
		emails = []*inbox.Email{}
	}
	respondJSON(w, http.StatusOK, successResponse{Success: true, Data: emails})
}

func (m *Module) handleGetEmail(w http.ResponseWriter, r *http.Request) {
	email, ok := m.store.Get(chi.URLParam(r, "id"))
	if !ok {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "Email not found"})
		return
	}
	respondJSON(w, http.StatusOK, successResponse{Success: true, Data: email})
}

func (m *Module) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	if !m.store.MarkRead(chi.URLParam(r, "id")) {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "Email not found"})
		return
	}
	respondJSON(w, http.StatusOK, successResponse{Success: true})
}

func (m *Module) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, successResponse{Success: true, Data: inbox.Templates()})
}
