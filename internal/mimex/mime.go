// Package mimex infers MIME types and media categories from file extensions.
// The mapping mirrors the formats the mobile capture flow produces; anything
// unrecognized falls back to application/octet-stream.
package mimex

import (
	"path/filepath"
	"strings"
)

// FromExtension returns the MIME type for a file path or bare extension.
func FromExtension(path string) string {
	switch normalize(path) {
	case "mp4":
		return "video/mp4"
	case "mov":
		return "video/quicktime"
	case "webm":
		return "video/webm"
	case "m4a", "aac":
		return "audio/mp4"
	case "mp3":
		return "audio/mpeg"
	case "wav":
		return "audio/wav"
	case "ogg":
		return "audio/ogg"
	case "amr":
		return "audio/amr"
	case "opus":
		return "audio/opus"
	case "3gp":
		return "audio/3gpp"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// Tag classifies a MIME type into a coarse media tag used for upload
// metadata: "image", "video", "audio" or "file".
func Tag(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return "image"
	case strings.HasPrefix(mimeType, "video/"):
		return "video"
	case strings.HasPrefix(mimeType, "audio/"):
		return "audio"
	default:
		return "file"
	}
}

func normalize(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		ext = path
	}
	ext = strings.TrimPrefix(ext, ".")
	// strip query params that survive copied remote URIs
	if i := strings.IndexByte(ext, '?'); i >= 0 {
		ext = ext[:i]
	}
	return strings.ToLower(ext)
}
