package mimex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"clip.mp4", "video/mp4"},
		{"/data/media/CLIP.MOV", "video/quicktime"},
		{"voice.m4a", "audio/mp4"},
		{"note.3gp", "audio/3gpp"},
		{"photo.jpg", "image/jpeg"},
		{"photo.JPEG", "image/jpeg"},
		{"https://s/evidence/a.png?token=abc", "image/png"},
		{"mp3", "audio/mpeg"},
		{"report.pdf", "application/octet-stream"},
		{"", "application/octet-stream"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FromExtension(tc.path), tc.path)
	}
}

func TestTag(t *testing.T) {
	assert.Equal(t, "image", Tag("image/jpeg"))
	assert.Equal(t, "video", Tag("video/mp4"))
	assert.Equal(t, "audio", Tag("audio/3gpp"))
	assert.Equal(t, "file", Tag("application/octet-stream"))
	assert.Equal(t, "file", Tag(""))
}
