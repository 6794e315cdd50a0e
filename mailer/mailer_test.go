package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecipients(t *testing.T) {
	got := ParseRecipients("a@x.com, b@x.com ,, c@x.com")
	assert.Equal(t, []string{"a@x.com", "b@x.com", "c@x.com"}, got)
}

func TestParseRecipients_Empty(t *testing.T) {
	assert.Empty(t, ParseRecipients(""))
	assert.Empty(t, ParseRecipients(" , ,"))
}

func TestParseRecipients_Single(t *testing.T) {
	assert.Equal(t, []string{"jane@acme.com"}, ParseRecipients("  jane@acme.com  "))
}

func TestPlainText(t *testing.T) {
	text := PlainText("<p>Hello <b>world</b></p><p>Second paragraph</p>")
	assert.NotContains(t, text, "<")
	assert.Contains(t, text, "Hello world")
	assert.Contains(t, text, "Second paragraph")
}
