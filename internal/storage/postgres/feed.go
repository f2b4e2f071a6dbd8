package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type FeedStore struct {
	db *sqlx.DB
}

func NewFeedStore(db *sqlx.DB) *FeedStore {
	return &FeedStore{db: db}
}

func (s *FeedStore) LinkStory(ctx context.Context, feedsID, storiesID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO feeds_stories_map (feeds_id, stories_id)
		VALUES ($1, $2)
		ON CONFLICT (feeds_id, stories_id) DO NOTHING`,
		feedsID, storiesID,
	)
	return err
}

func (s *FeedStore) StoryIDs(ctx context.Context, feedsID int64) ([]int64, error) {
	var ids []int64
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids,
		"SELECT stories_id FROM feeds_stories_map WHERE feeds_id = $1 ORDER BY stories_id",
		feedsID,
	)
	return ids, err
}
