// Package db wires the server's PostgreSQL-backed repositories.
package db

import (
	"context"
	"database/sql"

	"github.com/safenotes/safenotes/internal/server/media"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Media() media.Repository
}
