package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"story_ingester/internal/domain"
	"story_ingester/internal/urlnorm"
)

// recordAlias stores url and its normalized form as aliases of the story.
// Forms longer than the schema allows are skipped; overly encoded URLs
// simply don't get aliased.
func (s *IngestService) recordAlias(ctx context.Context, storiesID int64, url string) error {
	for _, u := range urlnorm.Variants(url) {
		if utf8.RuneCountInString(u) > domain.MaxURLLength {
			s.logger.Debug().
				Int64("stories_id", storiesID).
				Int("length", utf8.RuneCountInString(u)).
				Msg("skipping overlong story url alias")
			continue
		}
		if err := s.storyURLs.Insert(ctx, storiesID, u); err != nil {
			return fmt.Errorf("insert story url: %w", err)
		}
	}
	return nil
}

func (s *IngestService) recordAliases(ctx context.Context, story *domain.Story, urls ...string) error {
	for _, u := range urls {
		if err := s.recordAlias(ctx, story.ID, u); err != nil {
			return err
		}
	}
	return nil
}
