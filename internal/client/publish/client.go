// Package publish is the client for the evidence page service: it turns a
// set of public media URLs into one expiring shareable page link.
package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/safenotes/safenotes/internal/common"
)

// Client calls the page service's generate endpoint.
type Client struct {
	base  string
	httpc *http.Client
}

// New returns a client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{base: strings.TrimRight(baseURL, "/"), httpc: &http.Client{}}
}

type generateRequest struct {
	Media []string `json:"media"`
}

type generateResponse struct {
	HTMLURL string `json:"html_url"`
}

// Generate asks the service to render and store a page embedding mediaURLs
// and returns the page link. The 1..5 bound is checked locally before any
// request; server rejections surface with their error text.
func (c *Client) Generate(ctx context.Context, mediaURLs []string) (string, error) {
	if len(mediaURLs) == 0 || len(mediaURLs) > 5 {
		return "", common.ErrMediaCountOutOfRange
	}

	body, err := json.Marshal(generateRequest{Media: mediaURLs})
	if err != nil {
		return "", fmt.Errorf("encoding generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("generate rejected: %s: %s", resp.Status, strings.TrimSpace(string(text)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding generate response: %w", err)
	}
	if out.HTMLURL == "" {
		return "", fmt.Errorf("generate response missing html_url")
	}
	return out.HTMLURL, nil
}
