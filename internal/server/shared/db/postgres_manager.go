package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/safenotes/safenotes/internal/server/media"
	"github.com/safenotes/safenotes/internal/server/migrations"
)

type PostgresRepositoryManager struct {
	db    *sql.DB
	media media.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Media() media.Repository {
	return m.media
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	media, err := media.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("media repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:    db,
		media: media,
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
