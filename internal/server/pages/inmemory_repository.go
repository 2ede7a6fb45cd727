package pages

import (
	"context"
	"sync"
	"time"

	"github.com/safenotes/safenotes/internal/common"
)

type storedPage struct {
	html      string
	expiresAt time.Time
}

// InMemoryRepository is a map-backed page store used in tests and for
// single-node development runs.
type InMemoryRepository struct {
	mu    sync.RWMutex
	pages map[string]storedPage

	// test seam
	now func() time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{pages: make(map[string]storedPage), now: time.Now}
}

func (r *InMemoryRepository) Save(_ context.Context, id, html string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages[id] = storedPage{html: html, expiresAt: r.now().Add(ttl)}
	return nil
}

func (r *InMemoryRepository) Get(_ context.Context, id string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pages[id]
	if !ok || r.now().After(p.expiresAt) {
		return "", common.ErrorNotFound
	}
	return p.html, nil
}
