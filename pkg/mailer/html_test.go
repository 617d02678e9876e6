package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/starprince/maildesk/pkg/mailer"
)

func TestTextToHTML(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   string
		want string
	}{
		"single line":         {"Hello", "<p>Hello</p>"},
		"newlines to breaks":  {"line one\nline two", "<p>line one<br>line two</p>"},
		"windows newlines":    {"a\r\nb", "<p>a<br>b</p>"},
		"markup is escaped":   {"<b>bold</b> & more", "<p>&lt;b&gt;bold&lt;/b&gt; &amp; more</p>"},
		"empty body":          {"", "<p></p>"},
		"consecutive breaks":  {"a\n\nb", "<p>a<br><br>b</p>"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, mailer.TextToHTML(tc.in))
		})
	}
}
