// Package upload implements the media upload gateway: it pushes a local
// evidence file to remote object storage, returns the publicly resolvable
// URL, and records upload metadata so the out-of-band sweeper can clean the
// object up after the retention window.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/safenotes/safenotes/internal/logging"
	"github.com/safenotes/safenotes/internal/mimex"
)

// S3API is the subset of the S3 client the gateway uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Options configures the gateway.
type Options struct {
	// Bucket is the object storage bucket evidence is uploaded into.
	Bucket string
	// PublicBaseURL is the storage endpoint objects are publicly served
	// from; the public URL is PublicBaseURL/Bucket/Key.
	PublicBaseURL string
	// MetadataURL is the server endpoint upload metadata is recorded at.
	MetadataURL string
}

// Gateway uploads evidence media. It performs no retries: the caller decides
// whether a dispatch proceeds without a failed item.
type Gateway struct {
	s3    S3API
	httpc *http.Client
	opts  Options
	log   logging.Logger

	// test seams
	now   func() time.Time
	newID func() string
}

// New returns a gateway using the given S3 client.
func New(s3c S3API, opts Options, log logging.Logger) *Gateway {
	return &Gateway{
		s3:    s3c,
		httpc: &http.Client{},
		opts:  opts,
		log:   log.With("component", "upload"),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// mediaRecord is the metadata payload recorded for each uploaded object,
// consumed later by the sweeper.
type mediaRecord struct {
	ID         string    `json:"id"`
	StorageKey string    `json:"storage_key"`
	PublicURL  string    `json:"public_url"`
	UploadedAt time.Time `json:"uploaded_at"`
	MimeType   string    `json:"mime_type"`
	Tag        string    `json:"tag"`
}

// Upload transmits the file at localPath and returns its public URL. The
// MIME type is inferred from the file extension when mimeHint is empty.
// Any failure, including a failed metadata record, surfaces to the caller
// with the server's error text; nothing is retried.
func (g *Gateway) Upload(ctx context.Context, localPath, mimeHint string) (string, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("reading media: %w", err)
	}

	mimeType := mimeHint
	if mimeType == "" {
		mimeType = mimex.FromExtension(localPath)
	}

	id := g.newID()
	key := g.storageKey(id, filepath.Ext(localPath))

	_, err = g.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.opts.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	publicURL := fmt.Sprintf("%s/%s/%s",
		strings.TrimRight(g.opts.PublicBaseURL, "/"), g.opts.Bucket, key)

	if err := g.recordMetadata(ctx, mediaRecord{
		ID:         id,
		StorageKey: key,
		PublicURL:  publicURL,
		UploadedAt: g.now().UTC(),
		MimeType:   mimeType,
		Tag:        mimex.Tag(mimeType),
	}); err != nil {
		return "", err
	}

	return publicURL, nil
}

// storageKey builds a fresh object name, date-prefixed for bucket hygiene.
func (g *Gateway) storageKey(id, ext string) string {
	d := g.now().UTC()
	return fmt.Sprintf("sos/%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), id, ext)
}

func (g *Gateway) recordMetadata(ctx context.Context, rec mediaRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.opts.MetadataURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building metadata request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("recording upload metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("recording upload metadata: %s: %s", resp.Status, strings.TrimSpace(string(text)))
	}
	return nil
}
