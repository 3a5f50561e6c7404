package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTMLBody(t *testing.T) {
	html, err := renderHTMLBody(ContactMessage{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Loved the Bangkok post!",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Alice")
	assert.Contains(t, html, "alice@example.com")
	assert.Contains(t, html, "Loved the Bangkok post!")
	assert.Contains(t, html, "New Contact Form Submission")
}

func TestRenderHTMLBody_EscapesMarkup(t *testing.T) {
	html, err := renderHTMLBody(ContactMessage{
		Name:    "<script>alert(1)</script>",
		Email:   "x@example.com",
		Message: "<b>bold</b>",
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>bold</b>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderTextBody(t *testing.T) {
	text := renderTextBody(ContactMessage{
		Name:    "Bob",
		Email:   "bob@example.com",
		Message: "Multi\nline\nmessage",
	})

	assert.Contains(t, text, "Name: Bob")
	assert.Contains(t, text, "Email: bob@example.com")
	assert.Contains(t, text, "Multi\nline\nmessage")
}
