// Package sos assembles and dispatches the emergency message: evidence
// selection, message composition over the upload and page services, and the
// SMS handoff.
package sos

import (
	"github.com/safenotes/safenotes/internal/client/models"
	"github.com/safenotes/safenotes/internal/common"
)

// MaxSelection is the hard cap on evidence items per SOS message.
const MaxSelection = 5

// Selection is the evidence subset picked for a draft. The bounds (at most
// five items, at most one video) are enforced here, at selection time, so
// composition can trust its input.
type Selection struct {
	items []models.EvidenceItem
}

// Add appends an item, rejecting anything beyond the selection bounds.
// Adding an already selected item is a no-op.
func (s *Selection) Add(item models.EvidenceItem) error {
	for _, e := range s.items {
		if e.ID == item.ID {
			return nil
		}
	}
	if len(s.items) >= MaxSelection {
		return common.ErrSelectionFull
	}
	if item.Kind == models.MediaKindVideo && s.hasVideo() {
		return common.ErrVideoAlreadySelected
	}
	s.items = append(s.items, item)
	return nil
}

// Remove drops the item with the given id, if selected.
func (s *Selection) Remove(id string) {
	for i, e := range s.items {
		if e.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Items returns the selected evidence in selection order.
func (s *Selection) Items() []models.EvidenceItem {
	out := make([]models.EvidenceItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of selected items.
func (s *Selection) Len() int {
	return len(s.items)
}

func (s *Selection) hasVideo() bool {
	for _, e := range s.items {
		if e.Kind == models.MediaKindVideo {
			return true
		}
	}
	return false
}
