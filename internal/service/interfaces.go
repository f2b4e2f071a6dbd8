package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"story_ingester/internal/domain"
)

type StoryStore interface {
	LockTable(ctx context.Context) error
	FindByIdentifiers(ctx context.Context, mediaID int64, values []string) (*domain.Story, error)
	FindByAlias(ctx context.Context, mediaID int64, urls []string) (*domain.Story, error)
	FindByTitleDate(ctx context.Context, mediaID int64, title string, fingerprint uuid.UUID, publishDate time.Time) (*domain.Story, error)
	ExistsByGUID(ctx context.Context, mediaID int64, guid string) (bool, error)
	Insert(ctx context.Context, story *domain.Story) (*domain.Story, error)
}

type StoryURLStore interface {
	Insert(ctx context.Context, storiesID int64, url string) error
}

type FeedStore interface {
	LinkStory(ctx context.Context, feedsID, storiesID int64) error
}

type MediaStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Medium, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	InTransaction(ctx context.Context) bool
}

type TitleFingerprinter interface {
	Fingerprint(title, mediaName string) (uuid.UUID, bool)
}
