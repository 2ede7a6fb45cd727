package sos

import (
	"context"
	"fmt"

	"github.com/safenotes/safenotes/internal/client/models"
	"github.com/safenotes/safenotes/internal/client/state"
	"github.com/safenotes/safenotes/internal/common"
	"github.com/safenotes/safenotes/internal/logging"
	"github.com/safenotes/safenotes/internal/mimex"
)

// Uploader publishes one local media file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, localPath, mimeHint string) (string, error)
}

// Publisher aggregates public media URLs into one expiring page link.
type Publisher interface {
	Generate(ctx context.Context, mediaURLs []string) (string, error)
}

// Coordinates is a location fix.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Locator resolves the device's current position.
type Locator interface {
	Current(ctx context.Context) (Coordinates, error)
}

// Partial-failure markers. They are appended to the outgoing message so the
// recipient knows data is missing; they never block the dispatch.
const (
	markerLocationUnavailable  = "[location unavailable]"
	markerMediaUploadFailed    = "[one or more media failed to upload]"
	markerMediaLinkUnavailable = "[media link unavailable]"
)

// Composer builds the outgoing emergency message. Every network stage is
// individually recoverable; only a missing emergency contact is fatal, and
// that is checked before any network call.
type Composer struct {
	store     *state.Store
	uploader  Uploader
	publisher Publisher
	locator   Locator
	log       logging.Logger
}

// NewComposer wires the composition pipeline.
func NewComposer(store *state.Store, up Uploader, pub Publisher, loc Locator, log logging.Logger) *Composer {
	return &Composer{
		store:     store,
		uploader:  up,
		publisher: pub,
		locator:   loc,
		log:       log.With("component", "sos"),
	}
}

// Compose assembles the dispatch package for the draft. Selection bounds
// (≤5 items, ≤1 video) are the Selection type's responsibility and are
// trusted here.
func (c *Composer) Compose(ctx context.Context, draft models.SOSDraft) (*models.DispatchPackage, error) {
	contact := c.store.EmergencyContact()
	if contact == nil {
		return nil, common.ErrNoEmergencyContact
	}
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	msg := draft.MessageText

	if draft.IncludeLocation {
		loc, err := c.locator.Current(ctx)
		if err != nil {
			c.log.Warn(ctx, "location fix failed", "error", err)
			msg += "\n\n" + markerLocationUnavailable
		} else {
			msg += fmt.Sprintf("\n\nMy location: https://maps.google.com/?q=%v,%v",
				loc.Latitude, loc.Longitude)
		}
	}

	if len(draft.SelectedEvidence) > 0 {
		// uploads run strictly one after another; a later failure never
		// rolls back an earlier success
		var publicURLs []string
		uploadFailed := false
		for _, item := range draft.SelectedEvidence {
			url, err := c.uploader.Upload(ctx, item.LocalPath, mimex.FromExtension(item.LocalPath))
			if err != nil {
				c.log.Warn(ctx, "media upload failed", "id", item.ID, "error", err)
				uploadFailed = true
				continue
			}
			publicURLs = append(publicURLs, url)
		}

		if uploadFailed {
			msg += "\n\n" + markerMediaUploadFailed
		}

		if len(publicURLs) > 0 {
			pageURL, err := c.publisher.Generate(ctx, publicURLs)
			if err != nil {
				c.log.Warn(ctx, "evidence page generation failed", "error", err)
				msg += "\n\n" + markerMediaLinkUnavailable
			} else {
				msg += "\n\nMedia evidence: " + pageURL
			}
		}
	}

	return &models.DispatchPackage{
		Message:       msg,
		ContactNumber: contact.Number,
		SMSURI:        SMSURI(contact.Number, msg),
	}, nil
}
