package media

import (
	"context"
	"sync"
	"time"

	"github.com/safenotes/safenotes/internal/server/models"
)

// InMemoryRepository is a map-backed media index used in tests and for
// single-node development runs.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]models.Media
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{records: make(map[string]models.Media)}
}

func (r *InMemoryRepository) Insert(_ context.Context, m *models.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[m.ID] = *m
	return nil
}

func (r *InMemoryRepository) SelectExpired(_ context.Context, cutoff time.Time) ([]models.Media, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []models.Media
	for _, m := range r.records {
		if m.UploadedAt.Before(cutoff) {
			result = append(result, m)
		}
	}
	return result, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}
