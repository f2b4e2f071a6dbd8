package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"story_ingester/internal/domain"
)

type MediaStore struct {
	db *sqlx.DB
}

func NewMediaStore(db *sqlx.DB) *MediaStore {
	return &MediaStore{db: db}
}

func (s *MediaStore) FindByID(ctx context.Context, id int64) (*domain.Medium, error) {
	var medium domain.Medium
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &medium,
		"SELECT media_id, name, url, full_text_rss FROM media WHERE media_id = $1",
		id,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrMediumNotFound
	}
	if err != nil {
		return nil, err
	}
	return &medium, nil
}
