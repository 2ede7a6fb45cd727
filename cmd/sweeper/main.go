package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/safenotes/safenotes/internal/logging"
	"github.com/safenotes/safenotes/internal/s3x"
	"github.com/safenotes/safenotes/internal/server/config"
	"github.com/safenotes/safenotes/internal/server/shared/db"
	"github.com/safenotes/safenotes/internal/server/sweeper"
)

// The sweeper runs one pass and exits; scheduling is left to cron or a
// systemd timer.
func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	manager, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	s3c, err := s3x.NewClient(ctx, s3x.Config{
		Region:       cfg.S3Region,
		AccessKey:    cfg.S3RootUser,
		SecretKey:    cfg.S3RootPassword,
		BaseEndpoint: cfg.S3BaseEndpoint,
	})
	if err != nil {
		log.Printf("%v", err)
		return
	}

	s := sweeper.New(manager.Media(), s3c, cfg.S3Bucket, cfg.SweepWindow, logger)
	if _, err := s.SweepOnce(ctx); err != nil {
		log.Printf("%v", err)
	}

	if conn := manager.Conn(); conn != nil {
		_ = conn.Close()
	}
}
