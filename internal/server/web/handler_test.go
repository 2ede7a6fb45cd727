package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safenotes/safenotes/internal/logging"
	"github.com/safenotes/safenotes/internal/server/media"
	"github.com/safenotes/safenotes/internal/server/pages"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fixture struct {
	pages   *pages.InMemoryRepository
	media   *media.InMemoryRepository
	handler *Handler
	router  http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		pages: pages.NewInMemoryRepository(),
		media: media.NewInMemoryRepository(),
	}
	f.handler = NewHandler(f.pages, f.media, "https://pages.example.com", 24*time.Hour, testLogger())
	f.handler.newID = func() string { return "fixed-id" }
	f.router = SetupRouter(f.handler)
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestGenerate_ReturnsPageLink(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/generate", `{"media":["https://s/a.jpg","https://s/b.mp4"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://pages.example.com/embed?id=fixed-id", resp["html_url"])

	html, err := f.pages.Get(context.Background(), "fixed-id")
	require.NoError(t, err)
	assert.Contains(t, html, "SOS Media Archive")
	assert.Contains(t, html, "https://s/a.jpg")
}

func TestGenerate_BoundsEnforced(t *testing.T) {
	f := newFixture(t)

	for _, body := range []string{
		`{"media":[]}`,
		`{}`,
		`not json`,
		`{"media":["1","2","3","4","5","6"]}`,
	} {
		w := f.do(http.MethodPost, "/generate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "Must include 1 to 5 media URLs", body)
	}

	// five is still fine
	w := f.do(http.MethodPost, "/generate", `{"media":["1","2","3","4","5"]}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEmbed_ServesStoredPage(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.pages.Save(context.Background(), "abc", "<html>hi</html>", time.Hour))

	w := f.do(http.MethodGet, "/embed?id=abc", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "<html>hi</html>", w.Body.String())
}

func TestEmbed_MissingID(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/embed", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing id", w.Body.String())
}

func TestEmbed_UnknownOrExpired(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/embed?id=ghost", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Page not found or expired", w.Body.String())
}

func TestRecordMedia_StoresRecord(t *testing.T) {
	f := newFixture(t)

	body, _ := json.Marshal(map[string]any{
		"id":          "m1",
		"storage_key": "sos/2024/06/01/m1.jpg",
		"public_url":  "https://s/evidence/sos/2024/06/01/m1.jpg",
		"uploaded_at": time.Now().UTC().Format(time.RFC3339),
		"mime_type":   "image/jpeg",
		"tag":         "image",
	})
	w := f.do(http.MethodPost, "/media", string(bytes.TrimSpace(body)))

	require.Equal(t, http.StatusOK, w.Code)

	expired, err := f.media.SelectExpired(context.Background(), time.Now().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "sos/2024/06/01/m1.jpg", expired[0].StorageKey)
}

func TestRecordMedia_RequiresKeyAndURL(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/media", `{"id":"m1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
}
