package pages

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_EmbedsByExtension(t *testing.T) {
	html, err := Render([]string{
		"https://s/v.mp4",
		"https://s/a.m4a",
		"https://s/i.jpg",
		"https://s/doc.pdf",
	}, 24*time.Hour)
	require.NoError(t, err)

	assert.Contains(t, html, `<video controls src="https://s/v.mp4">`)
	assert.Contains(t, html, `<source src="https://s/a.m4a" type="audio/mp4">`)
	assert.Contains(t, html, `<source src="https://s/a.m4a" type="audio/m4a">`)
	assert.Contains(t, html, `<img src="https://s/i.jpg" alt="SOS media" />`)
	assert.Contains(t, html, `<a href="https://s/doc.pdf"`)
	assert.Contains(t, html, "Download file")
}

func TestRender_HeaderAndExpiryNotice(t *testing.T) {
	html, err := Render([]string{"https://s/i.png"}, 24*time.Hour)
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>SOS Media Archive</h1>")
	assert.Contains(t, html, "This page will expire in 24 hours.")
	assert.Contains(t, html, "Page generated by SafeNotes.")
}

func TestRender_AudioTypes(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://s/x.3gp", "audio/3gpp"},
		{"https://s/x.mp3", "audio/mpeg"},
		{"https://s/x.wav", "audio/wav"},
		{"https://s/x.ogg", "audio/ogg"},
		{"https://s/x.amr", "audio/amr"},
		{"https://s/x.opus", "audio/opus"},
	}
	for _, tc := range tests {
		html, err := Render([]string{tc.url}, time.Hour)
		require.NoError(t, err)
		assert.Contains(t, html, `type="`+tc.want+`"`, tc.url)
	}
}

func TestRender_ExtensionCaseInsensitive(t *testing.T) {
	html, err := Render([]string{"https://s/CLIP.MOV"}, time.Hour)
	require.NoError(t, err)
	assert.Contains(t, html, "<video controls")
}

func TestRender_ExpiryText(t *testing.T) {
	assert.Equal(t, "24 hours", expiryText(24*time.Hour))
	assert.Equal(t, "1 hour", expiryText(time.Hour))
	assert.Equal(t, "30 minutes", expiryText(30*time.Minute))
}

func TestRender_PreservesOrder(t *testing.T) {
	html, err := Render([]string{"https://s/1.jpg", "https://s/2.jpg"}, time.Hour)
	require.NoError(t, err)
	assert.Less(t, strings.Index(html, "1.jpg"), strings.Index(html, "2.jpg"))
}
