package consumer

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"story_ingester/internal/domain"
)

type StoryAdder interface {
	AddStory(ctx context.Context, candidate domain.Story, feedsID int64) (*domain.Story, error)
}

type Publisher interface {
	Publish(ctx context.Context, story *domain.Story, feedsID int64) error
}
