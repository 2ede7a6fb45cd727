package db

import (
	"context"
	"database/sql"

	"github.com/safenotes/safenotes/internal/server/media"
)

type InMemoryRepositoryManager struct {
	media media.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Media() media.Repository {
	return m.media
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{media: media.NewInMemoryRepository()}
}
