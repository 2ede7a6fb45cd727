// Package journal is the local, on-device record of captured evidence. It
// owns the underlying media files and the TTL-based eviction pass that runs
// before every listing.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/safenotes/safenotes/internal/client/models"
	"github.com/safenotes/safenotes/internal/client/repositories/kv"
	"github.com/safenotes/safenotes/internal/client/state"
	"github.com/safenotes/safenotes/internal/filex"
	"github.com/safenotes/safenotes/internal/logging"
)

// storageKey is the well-known key the journal index is serialized under,
// as a single JSON array.
const storageKey = "journal_media"

// Service is the journal store. All mutations persist the index fully
// before returning; the contract assumes a single in-process writer.
type Service struct {
	repo     kv.Repository
	store    *state.Store
	mediaDir string
	log      logging.Logger

	// test seams
	now   func() time.Time
	newID func() string
}

// New creates the journal service, ensuring its private media directory
// exists. Evidence files always live inside mediaDir.
func New(repo kv.Repository, store *state.Store, mediaDir string, log logging.Logger) (*Service, error) {
	dir, err := filex.EnsureDir(mediaDir)
	if err != nil {
		return nil, fmt.Errorf("journal media dir: %w", err)
	}
	return &Service{
		repo:     repo,
		store:    store,
		mediaDir: dir,
		log:      log.With("component", "journal"),
		now:      time.Now,
		newID:    uuid.NewString,
	}, nil
}

// List returns the current evidence, newest first. Before anything is
// returned, every item older than the active TTL is evicted (file and
// record), and records whose backing file has gone missing are dropped.
// Eviction is idempotent: a failed file deletion still drops the record so
// already-evicted evidence can never resurface.
func (s *Service) List(ctx context.Context) ([]models.EvidenceItem, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	ttl, expires := s.store.TTLPolicy().Duration()
	threshold := s.now().Add(-ttl).UnixMilli()

	kept := make([]models.JournalRecord, 0, len(records))
	changed := false
	for _, rec := range records {
		if expires && rec.Timestamp <= threshold {
			if err := os.Remove(rec.URI); err != nil && !errors.Is(err, os.ErrNotExist) {
				s.log.Warn(ctx, "failed to delete expired media", "uri", rec.URI, "error", err)
			}
			changed = true
			continue
		}
		if _, err := os.Stat(rec.URI); err != nil {
			// record without a file: reconcile silently
			changed = true
			continue
		}
		kept = append(kept, rec)
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Timestamp > kept[j].Timestamp })

	if changed {
		if err := s.persist(ctx, kept); err != nil {
			return nil, err
		}
	}

	items := make([]models.EvidenceItem, 0, len(kept))
	for _, rec := range kept {
		items = append(items, rec.Item())
	}
	return items, nil
}

// Add copies the file at localPath into the journal's private media
// directory and prepends a record for it. The index write completes before
// Add returns.
func (s *Service) Add(ctx context.Context, localPath string, kind models.MediaKind) (models.EvidenceItem, error) {
	records, err := s.load(ctx)
	if err != nil {
		return models.EvidenceItem{}, err
	}

	id := s.newID()
	dst := filepath.Join(s.mediaDir, id+filepath.Ext(localPath))
	if err := filex.CopyFile(localPath, dst); err != nil {
		return models.EvidenceItem{}, fmt.Errorf("saving media: %w", err)
	}

	rec := models.JournalRecord{
		ID:        id,
		URI:       dst,
		Type:      kind,
		Timestamp: s.now().UnixMilli(),
	}

	if err := s.persist(ctx, append([]models.JournalRecord{rec}, records...)); err != nil {
		_ = os.Remove(dst)
		return models.EvidenceItem{}, err
	}
	return rec.Item(), nil
}

// Remove deletes the record and its file. Removing an unknown id is a no-op.
func (s *Service) Remove(ctx context.Context, id string) error {
	records, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	var removed *models.JournalRecord
	for _, rec := range records {
		if rec.ID == id {
			r := rec
			removed = &r
			continue
		}
		kept = append(kept, rec)
	}
	if removed == nil {
		return nil
	}

	if err := os.Remove(removed.URI); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn(ctx, "failed to delete media file", "uri", removed.URI, "error", err)
	}
	return s.persist(ctx, kept)
}

// Clear deletes every item and its file. File deletion failures are
// aggregated into the returned error, but the index is removed regardless.
func (s *Service) Clear(ctx context.Context) error {
	records, err := s.load(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, rec := range records {
		if err := os.Remove(rec.URI); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("deleting %s: %w", rec.URI, err))
		}
	}

	if err := s.repo.Delete(ctx, storageKey); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SetTTLPolicy stores a new eviction policy, applied on the next List.
func (s *Service) SetTTLPolicy(p models.TTLPolicy) error {
	return s.store.SetTTLPolicy(p)
}

func (s *Service) load(ctx context.Context) ([]models.JournalRecord, error) {
	data, err := s.repo.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("loading journal: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var records []models.JournalRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// corrupt index: recover with an empty journal rather than
		// locking the user out of capture
		s.log.Error(ctx, "journal index corrupt, resetting", "error", err)
		return nil, nil
	}
	return records, nil
}

func (s *Service) persist(ctx context.Context, records []models.JournalRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding journal: %w", err)
	}
	if err := s.repo.Set(ctx, storageKey, data); err != nil {
		return fmt.Errorf("persisting journal: %w", err)
	}
	return nil
}
