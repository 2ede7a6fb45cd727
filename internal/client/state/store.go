// Package state holds the app-wide mutable state: the unlock flag and the
// persisted safety settings (PIN hash, TTL policy, emergency message and
// contact, location toggle).
//
// The store is an explicit dependency: every component that needs settings
// takes a *Store, there is no ambient global. Unlock state is in-memory only
// and always starts Disguised; settings are persisted through a pending-write
// queue drained by a background writer, with Flush available for re-lock and
// teardown paths that must not lose updates.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/safenotes/safenotes/internal/client/models"
	"github.com/safenotes/safenotes/internal/client/repositories/kv"
	"github.com/safenotes/safenotes/internal/common"
	"github.com/safenotes/safenotes/internal/logging"
)

// Well-known settings keys.
const (
	keyPinHash         = "settings.pin_hash"
	keyAutoWipeTTL     = "settings.auto_wipe_ttl"
	keyMessage         = "settings.emergency_message"
	keyContact         = "settings.emergency_contact"
	keyLocationEnabled = "settings.location_enabled"
)

const defaultEmergencyMessage = "Help me, I am in danger. Please respond quickly."

// DefaultPin is the factory PIN; onboarding is expected to replace it.
const DefaultPin = "1234"

// A PIN must be typeable on the calculator pad: digits only, and no leading
// zero (the pad suppresses digit chaining after a lone zero).
var pinPattern = regexp.MustCompile(`^[1-9]\d{3,7}$`)

type writeOp struct {
	key   string
	value []byte
	// flush is non-nil for flush markers: the writer closes it once every
	// preceding op has been persisted.
	flush chan struct{}
}

// Store is the process-wide state store.
type Store struct {
	repo kv.Repository
	log  logging.Logger

	mu              sync.RWMutex
	unlocked        bool
	pinHash         []byte
	ttl             models.TTLPolicy
	message         string
	contact         *models.EmergencyContact
	locationEnabled bool
	subs            []func()

	ops  chan writeOp
	done chan struct{}
}

// New creates a Store with defaults, overlays persisted settings from repo,
// and starts the background writer. The store always starts Disguised.
func New(ctx context.Context, repo kv.Repository, log logging.Logger) (*Store, error) {
	s := &Store{
		repo:            repo,
		log:             log.With("component", "state"),
		ttl:             models.TTL24h,
		message:         defaultEmergencyMessage,
		locationEnabled: true,
		ops:             make(chan writeOp, 64),
		done:            make(chan struct{}),
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	if s.pinHash == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPin), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing default pin: %w", err)
		}
		s.pinHash = hash
		s.enqueue(keyPinHash, hash)
	}

	go s.writer()
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	if v, err := s.repo.Get(ctx, keyPinHash); err != nil {
		return fmt.Errorf("loading settings: %w", err)
	} else if v != nil {
		s.pinHash = v
	}

	if v, err := s.repo.Get(ctx, keyAutoWipeTTL); err != nil {
		return fmt.Errorf("loading settings: %w", err)
	} else if p := models.TTLPolicy(v); p.Valid() {
		s.ttl = p
	}

	if v, err := s.repo.Get(ctx, keyMessage); err != nil {
		return fmt.Errorf("loading settings: %w", err)
	} else if v != nil {
		s.message = string(v)
	}

	if v, err := s.repo.Get(ctx, keyContact); err != nil {
		return fmt.Errorf("loading settings: %w", err)
	} else if v != nil {
		var c models.EmergencyContact
		if err := json.Unmarshal(v, &c); err != nil {
			s.log.Warn(ctx, "discarding corrupt contact record", "error", err)
		} else {
			s.contact = &c
		}
	}

	if v, err := s.repo.Get(ctx, keyLocationEnabled); err != nil {
		return fmt.Errorf("loading settings: %w", err)
	} else if v != nil {
		s.locationEnabled = string(v) == "true"
	}

	return nil
}

// writer drains the pending-write queue. Persistence failures are logged and
// the in-memory value stays authoritative for the rest of the session.
func (s *Store) writer() {
	defer close(s.done)
	for op := range s.ops {
		if op.flush != nil {
			close(op.flush)
			continue
		}
		if err := s.repo.Set(context.Background(), op.key, op.value); err != nil {
			s.log.Error(context.Background(), "settings write failed", "key", op.key, "error", err)
		}
	}
}

func (s *Store) enqueue(key string, value []byte) {
	s.ops <- writeOp{key: key, value: value}
}

// Flush blocks until every write enqueued before the call has been handed to
// the repository, or ctx is done.
func (s *Store) Flush(ctx context.Context) error {
	marker := make(chan struct{})
	select {
	case s.ops <- writeOp{flush: marker}:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-marker:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes pending writes and stops the background writer.
func (s *Store) Close(ctx context.Context) error {
	err := s.Flush(ctx)
	close(s.ops)
	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return err
}

// Subscribe registers fn to run after every state change.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// IsUnlocked reports whether the real app surface is reachable.
func (s *Store) IsUnlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unlocked
}

// Unlock flips the store into the unlocked state.
func (s *Store) Unlock() {
	s.setUnlocked(true)
}

// Relock flips back to Disguised. It is synchronous and touches memory only:
// re-locking must never wait on storage or network.
func (s *Store) Relock() {
	s.setUnlocked(false)
}

func (s *Store) setUnlocked(v bool) {
	s.mu.Lock()
	changed := s.unlocked != v
	s.unlocked = v
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// VerifyPin reports whether candidate matches the configured PIN exactly.
func (s *Store) VerifyPin(candidate string) bool {
	s.mu.RLock()
	hash := s.pinHash
	s.mu.RUnlock()
	return bcrypt.CompareHashAndPassword(hash, []byte(candidate)) == nil
}

// SetPin validates and replaces the access PIN.
func (s *Store) SetPin(pin string) error {
	if !pinPattern.MatchString(pin) {
		return common.ErrInvalidPin
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing pin: %w", err)
	}
	s.mu.Lock()
	s.pinHash = hash
	s.mu.Unlock()
	s.enqueue(keyPinHash, hash)
	s.notify()
	return nil
}

// TTLPolicy returns the active journal eviction policy.
func (s *Store) TTLPolicy() models.TTLPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ttl
}

// SetTTLPolicy stores a new eviction policy. It takes effect on the next
// journal listing.
func (s *Store) SetTTLPolicy(p models.TTLPolicy) error {
	if !p.Valid() {
		return fmt.Errorf("unknown ttl policy %q", p)
	}
	s.mu.Lock()
	s.ttl = p
	s.mu.Unlock()
	s.enqueue(keyAutoWipeTTL, []byte(p))
	s.notify()
	return nil
}

// EmergencyMessage returns the saved SOS message text.
func (s *Store) EmergencyMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.message
}

// SetEmergencyMessage stores the SOS message text.
func (s *Store) SetEmergencyMessage(msg string) {
	s.mu.Lock()
	s.message = msg
	s.mu.Unlock()
	s.enqueue(keyMessage, []byte(msg))
	s.notify()
}

// EmergencyContact returns a copy of the configured contact, or nil if none
// has been set.
func (s *Store) EmergencyContact() *models.EmergencyContact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.contact == nil {
		return nil
	}
	c := *s.contact
	return &c
}

// SetEmergencyContact validates and stores the SOS recipient.
func (s *Store) SetEmergencyContact(c models.EmergencyContact) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding contact: %w", err)
	}
	s.mu.Lock()
	s.contact = &c
	s.mu.Unlock()
	s.enqueue(keyContact, data)
	s.notify()
	return nil
}

// LocationEnabled reports whether SOS messages should attempt a location fix.
func (s *Store) LocationEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locationEnabled
}

// SetLocationEnabled stores the location toggle.
func (s *Store) SetLocationEnabled(v bool) {
	s.mu.Lock()
	s.locationEnabled = v
	s.mu.Unlock()
	val := "false"
	if v {
		val = "true"
	}
	s.enqueue(keyLocationEnabled, []byte(val))
	s.notify()
}
