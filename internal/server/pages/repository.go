// Package pages stores and renders expiring evidence pages. A page is a
// self-contained HTML document embedding the uploaded media; it stays
// retrievable for the configured TTL and then disappears.
package pages

import (
	"context"
	"time"
)

// Repository is an expiring key-value store for rendered pages.
type Repository interface {
	// Save stores html under id for ttl. An existing page is overwritten.
	Save(ctx context.Context, id, html string, ttl time.Duration) error

	// Get returns the page stored under id, or common.ErrorNotFound if it
	// never existed or already expired.
	Get(ctx context.Context, id string) (string, error)
}
