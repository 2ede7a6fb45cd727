// Package media records uploaded evidence objects so the sweeper can remove
// them from object storage once they outlive the retention window.
package media

import (
	"context"
	"time"

	"github.com/safenotes/safenotes/internal/server/models"
)

type Repository interface {
	// Insert records one uploaded object.
	Insert(ctx context.Context, m *models.Media) error

	// SelectExpired returns every record uploaded before cutoff.
	SelectExpired(ctx context.Context, cutoff time.Time) ([]models.Media, error)

	// Delete removes one record. Deleting an absent record is not an error.
	Delete(ctx context.Context, id string) error
}
