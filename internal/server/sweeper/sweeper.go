// Package sweeper removes uploaded evidence objects once they outlive the
// retention window: the object is deleted from storage first, then its
// metadata row. A failure on one object never blocks the rest.
package sweeper

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/safenotes/safenotes/internal/logging"
	"github.com/safenotes/safenotes/internal/server/media"
)

// S3API is the subset of the S3 client the sweeper uses.
type S3API interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type Sweeper struct {
	media  media.Repository
	s3     S3API
	bucket string
	window time.Duration
	log    logging.Logger

	// test seam
	now func() time.Time
}

func New(m media.Repository, s3c S3API, bucket string, window time.Duration, log logging.Logger) *Sweeper {
	return &Sweeper{
		media:  m,
		s3:     s3c,
		bucket: bucket,
		window: window,
		log:    log.With("component", "sweeper"),
		now:    time.Now,
	}
}

// SweepOnce deletes every object uploaded more than the retention window
// ago. The metadata row is only removed after the object delete succeeds, so
// a failed delete is retried on the next sweep. Returns how many objects
// were removed.
func (s *Sweeper) SweepOnce(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.window)

	expired, err := s.media.SelectExpired(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, m := range expired {
		_, err := s.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(m.StorageKey),
		})
		if err != nil {
			s.log.Warn(ctx, "object delete failed", "key", m.StorageKey, "error", err)
			continue
		}

		if err := s.media.Delete(ctx, m.ID); err != nil {
			s.log.Warn(ctx, "media record delete failed", "id", m.ID, "error", err)
			continue
		}
		removed++
	}

	s.log.Info(ctx, "sweep finished", "expired", len(expired), "removed", removed)
	return removed, nil
}

// Run sweeps on a fixed interval until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil {
				s.log.Error(ctx, "sweep failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
