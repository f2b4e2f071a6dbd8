package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"story_ingester/internal/domain"
	"story_ingester/internal/urlnorm"
)

// findDuplicate looks for a story of the candidate's medium that the
// candidate duplicates. Must run while the stories lock is held.
//
// Matches are tried in order: url/guid equality against any url/guid
// variant, then the story_urls aliases, then same title (or normalized
// title fingerprint) published on the same day. A title/date match
// registers the candidate's url and guid as aliases so the next lookup
// hits one of the cheaper tiers.
func (s *IngestService) findDuplicate(ctx context.Context, story *domain.Story, fingerprint uuid.UUID) (*domain.Story, error) {
	variants := urlnorm.Variants(story.URL, story.GUID)

	dup, err := s.stories.FindByIdentifiers(ctx, story.MediaID, variants)
	if err != nil {
		return nil, fmt.Errorf("find by identifiers: %w", err)
	}
	if dup != nil {
		return dup, nil
	}

	dup, err = s.stories.FindByAlias(ctx, story.MediaID, variants)
	if err != nil {
		return nil, fmt.Errorf("find by alias: %w", err)
	}
	if dup != nil {
		return dup, nil
	}

	if !story.Titled() {
		return nil, nil
	}

	dup, err = s.stories.FindByTitleDate(ctx, story.MediaID, story.Title, fingerprint, story.PublishDate)
	if err != nil {
		return nil, fmt.Errorf("find by title and date: %w", err)
	}
	if dup == nil {
		return nil, nil
	}

	if err := s.recordAliases(ctx, dup, story.URL, story.GUID); err != nil {
		return nil, err
	}
	return dup, nil
}
