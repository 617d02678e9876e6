package mailbox

import (
	"fmt"
	"io"
	"net/http"

	"github.com/starprince/maildesk/pkg/clientip"
	"github.com/starprince/maildesk/pkg/mailer"
)

// maxMultipartMemory bounds how much of a multipart body is held in memory
// before spilling to temp files. Attachment contents are still read fully
// into memory for provider dispatch.
const maxMultipartMemory = 32 << 20

// handleSendEmail accepts the composer's multipart form and runs the send
// pipeline. The credential comes from the API-key header (possibly
// injected from the cookie by CredentialFromCookie) with the configured
// default as fallback inside the pipeline.
func (m *Module) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid form data"})
		return
	}

	in := mailer.SendInput{
		To:        r.FormValue("to"),
		Cc:        r.FormValue("cc"),
		Bcc:       r.FormValue("bcc"),
		Subject:   r.FormValue("subject"),
		Body:      r.FormValue("body"),
		HTML:      r.FormValue("html"),
		FromTitle: r.FormValue("fromTitle"),
	}

	attachments, err := readAttachments(r)
	if err != nil {
		respondError(w, r, m.log, err)
		return
	}
	in.Attachments = attachments

	result, err := m.svc.Send(r.Context(), in, r.Header.Get(APIKeyHeader), clientip.GetIPFromContext(r.Context()))
	if err != nil {
		respondError(w, r, m.log, err)
		return
	}

	respondJSON(w, http.StatusOK, successResponse{Success: true, Data: result})
}

// readAttachments buffers every attachment part fully into memory, paired
// with its original filename.
func readAttachments(r *http.Request) ([]mailer.Attachment, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	var attachments []mailer.Attachment
	for _, header := range r.MultipartForm.File["attachments"] {
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("open attachment %q: %w", header.Filename, err)
		}

		content, err := io.ReadAll(file)
		_ = file.Close()
		if err != nil {
			return nil, fmt.Errorf("read attachment %q: %w", header.Filename, err)
		}

		attachments = append(attachments, mailer.Attachment{
			Filename: header.Filename,
			Content:  content,
		})
	}
	return attachments, nil
}
