package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type StoryURLStore struct {
	db *sqlx.DB
}

func NewStoryURLStore(db *sqlx.DB) *StoryURLStore {
	return &StoryURLStore{db: db}
}

// Insert registers url as an alias of the story. Existing pairs are left
// untouched.
func (s *StoryURLStore) Insert(ctx context.Context, storiesID int64, url string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO story_urls (stories_id, url)
		VALUES ($1, $2)
		ON CONFLICT (stories_id, url) DO NOTHING`,
		storiesID, url,
	)
	return err
}

func (s *StoryURLStore) ListByStory(ctx context.Context, storiesID int64) ([]string, error) {
	var urls []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &urls,
		"SELECT url FROM story_urls WHERE stories_id = $1 ORDER BY story_urls_id",
		storiesID,
	)
	return urls, err
}
