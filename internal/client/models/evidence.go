// Package models defines client-side data models used by the SafeNotes app
// core: captured evidence, the emergency contact and the SOS draft.
package models

import "time"

// MediaKind classifies a captured evidence artifact.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
	MediaKindAudio MediaKind = "audio"
)

// EvidenceItem is one captured artifact held in the journal.
type EvidenceItem struct {
	// ID is a globally unique identifier for the item.
	ID string

	// LocalPath points at the copy inside the app's private media directory.
	// The journal never references files outside that directory.
	LocalPath string

	// Kind is the artifact type.
	Kind MediaKind

	// CapturedAt drives both display ordering and TTL eviction.
	CapturedAt time.Time
}

// JournalRecord is the persisted shape of an EvidenceItem: one element of the
// JSON array stored under the journal's well-known key.
type JournalRecord struct {
	ID        string    `json:"id"`
	URI       string    `json:"uri"`
	Type      MediaKind `json:"type"`
	Timestamp int64     `json:"timestamp"` // epoch millis
}

// Item converts a persisted record back into the in-memory model.
func (r JournalRecord) Item() EvidenceItem {
	return EvidenceItem{
		ID:         r.ID,
		LocalPath:  r.URI,
		Kind:       r.Type,
		CapturedAt: time.UnixMilli(r.Timestamp),
	}
}

// Record converts an item into its persisted shape.
func (e EvidenceItem) Record() JournalRecord {
	return JournalRecord{
		ID:        e.ID,
		URI:       e.LocalPath,
		Type:      e.Kind,
		Timestamp: e.CapturedAt.UnixMilli(),
	}
}
