package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/safenotes/safenotes/internal/client/models"
	"github.com/safenotes/safenotes/internal/mimex"
)

// Journal lists journaled evidence, newest first. Listing also applies the
// auto-wipe policy, so expired items are gone by the time they would print.
func (a *App) Journal(ctx context.Context) error {
	items, err := a.journal.List(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if len(items) == 0 {
		fmt.Println("Journal is empty")
		return nil
	}
	for _, item := range items {
		fmt.Printf("%s  %-5s  %s  %s\n", item.ID, item.Kind, item.CapturedAt.Format("2006-01-02 15:04"), item.LocalPath)
	}
	return nil
}

// AddMedia copies the file at path into the journal. The media kind is
// inferred from the file extension.
func (a *App) AddMedia(ctx context.Context, path string) error {
	kind, ok := mediaKind(path)
	if !ok {
		fmt.Println("Unsupported media type:", path)
		return nil
	}

	item, err := a.journal.Add(ctx, path, kind)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Added", item.ID)
	return nil
}

func (a *App) RemoveMedia(ctx context.Context, id string) error {
	if err := a.journal.Remove(ctx, id); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Println("Removed", id)
	return nil
}

func (a *App) ClearJournal(ctx context.Context) error {
	if err := a.journal.Clear(ctx); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Println("Journal cleared")
	return nil
}

// SetTTL switches the journal auto-wipe window.
func (a *App) SetTTL(_ context.Context, value string) error {
	if err := a.journal.SetTTLPolicy(models.TTLPolicy(value)); err != nil {
		fmt.Println("Unknown TTL value, use one of: 24h, 48h, never")
		return err
	}
	fmt.Println("Auto-wipe set to", value)
	return nil
}

// mediaKind infers the journal media kind from the file extension.
func mediaKind(path string) (models.MediaKind, bool) {
	switch mimex.Tag(mimex.FromExtension(path)) {
	case "image":
		return models.MediaKindImage, true
	case "video":
		return models.MediaKindVideo, true
	case "audio":
		return models.MediaKindAudio, true
	}
	return "", false
}
