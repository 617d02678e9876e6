package mailer

import (
	"html"
	"strings"
)

// TextToHTML builds a minimal HTML body from plain text: the text is
// HTML-escaped and wrapped in a paragraph, with newlines converted to
// line breaks. Used when a send request carries no explicit HTML body.
func TextToHTML(text string) string {
	escaped := html.EscapeString(text)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}
