package pages

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// pageTemplate is the evidence page shell. Media embeds are chosen by file
// extension so the page works with nothing but the public object URLs.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>SafeNotes SOS Media</title>
<style>
body { background: #121212; color: #fff; font-family: Arial, sans-serif; padding: 20px; padding-bottom: 60px; min-height: 100vh; font-size: 3.5vw; text-align: left; }
h1 { color: #CA3535; font-size: 6.5vw; }
.media-item { margin-bottom: 20px; }
video, img { max-width: 100%; max-height: 500px; width: auto; height: auto; border: 1px solid #444; border-radius: 10px; display: block; }
audio { width: 100%; max-width: 600px; display: block; margin-top: 8px; }
@media screen and (max-width: 600px) {
  body { font-size: 6vw; }
  h1 { font-size: 10vw; }
}
</style>
</head>
<body>
<h1>SOS Media Archive</h1>
<p>This page contains temporary emergency evidence. This page will expire in {{.Expiry}}.</p>
{{range .Items}}<div class="media-item">
{{if eq .Kind "video"}}<video controls src="{{.URL}}"></video>
{{else if eq .Kind "audio"}}<audio controls>
{{range .Sources}}<source src="{{.URL}}" type="{{.Type}}">
{{end}}Your browser does not support audio playback.
</audio>
{{else if eq .Kind "image"}}<img src="{{.URL}}" alt="SOS media" />
{{else}}<a href="{{.URL}}" target="_blank" rel="noopener noreferrer">Download file</a>
{{end}}</div>
{{end}}<p style="color:#888; font-size: 0.9em;">Page generated by SafeNotes. If you see a 404 for media, it has expired for safety reasons.</p>
</body>
</html>
`))

type audioSource struct {
	URL  string
	Type string
}

type mediaItem struct {
	URL     string
	Kind    string
	Sources []audioSource
}

type pageData struct {
	Expiry string
	Items  []mediaItem
}

// audioTypes maps audio extensions to the MIME types offered to the player.
// m4a gets two source tags since browsers disagree on its type name.
var audioTypes = map[string][]string{
	".3gp":  {"audio/3gpp"},
	".m4a":  {"audio/mp4", "audio/m4a"},
	".mp3":  {"audio/mpeg"},
	".wav":  {"audio/wav"},
	".ogg":  {"audio/ogg"},
	".amr":  {"audio/amr"},
	".opus": {"audio/opus"},
}

var videoExts = []string{".mp4", ".mov", ".webm"}
var imageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"}

func classify(url string) mediaItem {
	lower := strings.ToLower(url)

	for _, ext := range videoExts {
		if strings.HasSuffix(lower, ext) {
			return mediaItem{URL: url, Kind: "video"}
		}
	}
	for ext, types := range audioTypes {
		if strings.HasSuffix(lower, ext) {
			sources := make([]audioSource, 0, len(types))
			for _, t := range types {
				sources = append(sources, audioSource{URL: url, Type: t})
			}
			return mediaItem{URL: url, Kind: "audio", Sources: sources}
		}
	}
	for _, ext := range imageExts {
		if strings.HasSuffix(lower, ext) {
			return mediaItem{URL: url, Kind: "image"}
		}
	}
	// PDFs and anything unrecognized render as a download link
	return mediaItem{URL: url, Kind: "file"}
}

// Render produces the HTML evidence page embedding the given media URLs.
func Render(mediaURLs []string, ttl time.Duration) (string, error) {
	data := pageData{Expiry: expiryText(ttl)}
	for _, url := range mediaURLs {
		data.Items = append(data.Items, classify(url))
	}

	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("error rendering page: %w", err)
	}
	return sb.String(), nil
}

func expiryText(ttl time.Duration) string {
	hours := int(ttl.Hours())
	if hours == 1 {
		return "1 hour"
	}
	if hours >= 1 {
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d minutes", int(ttl.Minutes()))
}
