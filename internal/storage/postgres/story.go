package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"story_ingester/internal/domain"
)

const (
	uniqueViolation       = "23505"
	storiesGUIDConstraint = "stories_guid"
)

const storyColumns = `stories_id, media_id, url, guid, title, normalized_title_hash,
	publish_date, description, language, full_text_rss, collect_date`

type StoryStore struct {
	db *sqlx.DB
}

func NewStoryStore(db *sqlx.DB) *StoryStore {
	return &StoryStore{db: db}
}

// LockTable takes the stories write lock for the rest of the surrounding
// transaction. SHARE ROW EXCLUSIVE conflicts with itself, so concurrent
// ingesters queue up behind each other while plain readers are not blocked.
func (s *StoryStore) LockTable(ctx context.Context) error {
	tx := GetTxFromContext(ctx)
	if tx == nil {
		return ErrNoTransaction
	}
	_, err := tx.ExecContext(ctx, "LOCK TABLE stories IN SHARE ROW EXCLUSIVE MODE")
	return err
}

// FindByIdentifiers returns the oldest story of the medium whose url or guid
// equals one of values.
func (s *StoryStore) FindByIdentifiers(ctx context.Context, mediaID int64, values []string) (*domain.Story, error) {
	query := `
		SELECT ` + storyColumns + `
		FROM stories
		WHERE media_id = $1
			AND (guid = ANY($2) OR url = ANY($2))
		ORDER BY stories_id
		LIMIT 1`

	return s.getOne(ctx, query, mediaID, pq.Array(values))
}

// FindByAlias returns the oldest story of the medium registered in
// story_urls under one of urls.
func (s *StoryStore) FindByAlias(ctx context.Context, mediaID int64, urls []string) (*domain.Story, error) {
	query := `
		WITH matching_stories AS (
			SELECT stories_id
			FROM story_urls
			WHERE url = ANY($2)
		)
		SELECT ` + storyColumns + `
		FROM stories
			JOIN matching_stories USING (stories_id)
		WHERE media_id = $1
		ORDER BY stories_id
		LIMIT 1`

	return s.getOne(ctx, query, mediaID, pq.Array(urls))
}

// FindByTitleDate returns the oldest story of the medium published on the
// same calendar day as publishDate whose title equals title or whose
// normalized title hash equals fingerprint. A uuid.Nil fingerprint matches
// on title only. The day is taken from the wall clock of publishDate,
// matching the zone-less publish_date column.
func (s *StoryStore) FindByTitleDate(ctx context.Context, mediaID int64, title string, fingerprint uuid.UUID, publishDate time.Time) (*domain.Story, error) {
	y, m, d := publishDate.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT ` + storyColumns + `
		FROM stories
		WHERE media_id = $1
			AND (md5(title) = md5($2) OR normalized_title_hash = $3)
			AND publish_date >= $4
			AND publish_date < $5
		ORDER BY stories_id
		LIMIT 1`

	var hash *string
	if fingerprint != uuid.Nil {
		h := fingerprint.String()
		hash = &h
	}

	return s.getOne(ctx, query, mediaID, title, hash, dayStart, dayEnd)
}

func (s *StoryStore) ExistsByGUID(ctx context.Context, mediaID int64, guid string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		"SELECT EXISTS (SELECT 1 FROM stories WHERE media_id = $1 AND guid = $2)",
		mediaID, guid,
	)
	return exists, err
}

// Insert stores story and returns the created row.
func (s *StoryStore) Insert(ctx context.Context, story *domain.Story) (*domain.Story, error) {
	query := `
		INSERT INTO stories (
			media_id, url, guid, title, normalized_title_hash,
			publish_date, description, language, full_text_rss
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING ` + storyColumns

	fullTextRSS := false
	if story.FullTextRSS != nil {
		fullTextRSS = *story.FullTextRSS
	}

	var created domain.Story
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &created, query,
		story.MediaID,
		story.URL,
		story.GUID,
		story.Title,
		story.NormalizedTitleHash,
		story.PublishDate,
		story.Description,
		story.Language,
		fullTextRSS,
	)
	if err != nil {
		if isDuplicateGUID(err) {
			return nil, domain.ErrDuplicateGUID
		}
		return nil, err
	}
	return &created, nil
}

func (s *StoryStore) GetByID(ctx context.Context, id int64) (*domain.Story, error) {
	return s.getOne(ctx, `SELECT `+storyColumns+` FROM stories WHERE stories_id = $1`, id)
}

func (s *StoryStore) getOne(ctx context.Context, query string, args ...interface{}) (*domain.Story, error) {
	var story domain.Story
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &story, query, args...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query story: %w", err)
	}
	return &story, nil
}

func isDuplicateGUID(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == uniqueViolation && pqErr.Constraint == storiesGUIDConstraint
}
