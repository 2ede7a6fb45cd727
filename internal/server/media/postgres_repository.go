package media

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/safenotes/safenotes/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, m *models.Media) error {

	query :=
		`INSERT INTO sos_media (id, storage_key, public_url, uploaded_at, mime_type, tag)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query, m.ID, m.StorageKey, m.PublicURL, m.UploadedAt, m.MimeType, m.Tag)

	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}

func (r *PostgresRepository) SelectExpired(ctx context.Context, cutoff time.Time) ([]models.Media, error) {

	query :=
		`SELECT id, storage_key, public_url, uploaded_at, mime_type, tag
		 FROM sos_media
		 WHERE uploaded_at < $1
		 ORDER BY uploaded_at
		 `

	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []models.Media
	for rows.Next() {
		var m models.Media
		if err := rows.Scan(&m.ID, &m.StorageKey, &m.PublicURL, &m.UploadedAt, &m.MimeType, &m.Tag); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {

	query := `DELETE FROM sos_media WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}
