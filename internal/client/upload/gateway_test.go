package upload

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safenotes/safenotes/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeS3 struct {
	puts []s3.PutObjectInput
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, *params)
	return &s3.PutObjectOutput{}, nil
}

func writeMedia(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))
	return path
}

func newGateway(t *testing.T, s3c S3API, metadataURL string) *Gateway {
	t.Helper()
	g := New(s3c, Options{
		Bucket:        "evidence",
		PublicBaseURL: "https://storage.example.com/",
		MetadataURL:   metadataURL,
	}, testLogger())
	g.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	g.newID = func() string { return "fixed-id" }
	return g
}

func TestUpload_Success(t *testing.T) {
	var recorded mediaRecord
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recorded))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	fake := &fakeS3{}
	g := newGateway(t, fake, srv.URL)

	url, err := g.Upload(context.Background(), writeMedia(t, "clip.mp4"), "")
	require.NoError(t, err)

	assert.Equal(t, "https://storage.example.com/evidence/sos/2024/06/01/fixed-id.mp4", url)

	require.Len(t, fake.puts, 1)
	assert.Equal(t, "evidence", aws.ToString(fake.puts[0].Bucket))
	assert.Equal(t, "sos/2024/06/01/fixed-id.mp4", aws.ToString(fake.puts[0].Key))
	assert.Equal(t, "video/mp4", aws.ToString(fake.puts[0].ContentType))

	assert.Equal(t, "fixed-id", recorded.ID)
	assert.Equal(t, "sos/2024/06/01/fixed-id.mp4", recorded.StorageKey)
	assert.Equal(t, url, recorded.PublicURL)
	assert.Equal(t, "video/mp4", recorded.MimeType)
	assert.Equal(t, "video", recorded.Tag)
}

func TestUpload_MimeHintWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	fake := &fakeS3{}
	g := newGateway(t, fake, srv.URL)

	_, err := g.Upload(context.Background(), writeMedia(t, "capture.bin"), "audio/amr")
	require.NoError(t, err)
	assert.Equal(t, "audio/amr", aws.ToString(fake.puts[0].ContentType))
}

func TestUpload_S3ErrorSurfaces(t *testing.T) {
	metadataCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metadataCalls++
	}))
	defer srv.Close()

	g := newGateway(t, &fakeS3{err: errors.New("quota exceeded")}, srv.URL)

	_, err := g.Upload(context.Background(), writeMedia(t, "a.jpg"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Zero(t, metadataCalls, "no metadata is recorded for a failed upload")
}

func TestUpload_MetadataErrorSurfacesServerText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "row insert rejected", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := newGateway(t, &fakeS3{}, srv.URL)

	_, err := g.Upload(context.Background(), writeMedia(t, "a.jpg"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row insert rejected")
}

func TestUpload_MissingFile(t *testing.T) {
	g := newGateway(t, &fakeS3{}, "http://unused.invalid")
	_, err := g.Upload(context.Background(), filepath.Join(t.TempDir(), "nope.jpg"), "")
	assert.Error(t, err)
}
