package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"story_ingester/internal/domain"
)

type IngestService struct {
	stories   StoryStore
	storyURLs StoryURLStore
	feeds     FeedStore
	media     MediaStore
	txManager TransactionManager
	titles    TitleFingerprinter
	logger    zerolog.Logger
}

func NewIngestService(
	stories StoryStore,
	storyURLs StoryURLStore,
	feeds FeedStore,
	media MediaStore,
	txManager TransactionManager,
	titles TitleFingerprinter,
	logger zerolog.Logger,
) *IngestService {
	return &IngestService{
		stories:   stories,
		storyURLs: storyURLs,
		feeds:     feeds,
		media:     media,
		txManager: txManager,
		titles:    titles,
		logger:    logger.With().Str("component", "ingest").Logger(),
	}
}

// AddStory returns the existing story the candidate duplicates, or stores
// the candidate, links it to feedsID and returns it with IsNew set.
//
// A nil story with a nil error means the candidate was rejected: its url or
// guid is too long to store, or another story of the medium already owns
// its guid. Any other failure is returned as an *IngestError.
func (s *IngestService) AddStory(ctx context.Context, candidate domain.Story, feedsID int64) (*domain.Story, error) {
	if s.txManager.InTransaction(ctx) {
		return nil, ErrInTransaction
	}

	story := sanitize(candidate)

	var result *domain.Story
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		result, err = s.addStoryTx(txCtx, &story, feedsID)
		return err
	})

	if errors.Is(err, errDuplicateGUID) {
		s.logger.Warn().
			Int64("media_id", story.MediaID).
			Str("url", story.URL).
			Str("guid", story.GUID).
			Msg("failed to add story due to guid conflict")
		return nil, nil
	}
	if err != nil {
		var ingestErr *IngestError
		if !errors.As(err, &ingestErr) {
			err = &IngestError{Story: story, Err: err}
		}
		s.logger.Error().Err(err).Int64("feeds_id", feedsID).Msg("failed to add story")
		return nil, err
	}

	return result, nil
}

func (s *IngestService) addStoryTx(ctx context.Context, story *domain.Story, feedsID int64) (*domain.Story, error) {
	if err := s.stories.LockTable(ctx); err != nil {
		return nil, fmt.Errorf("lock stories: %w", err)
	}

	medium, err := s.media.FindByID(ctx, story.MediaID)
	if err != nil {
		return nil, fmt.Errorf("find medium %d: %w", story.MediaID, err)
	}

	// uuid.Nil restricts the title/date lookup to the raw title.
	var fingerprint uuid.UUID
	hasFingerprint := false
	if story.Titled() {
		fingerprint, hasFingerprint = s.titles.Fingerprint(story.Title, medium.Name)
		if !hasFingerprint {
			fingerprint = uuid.Nil
		}
	}

	dup, err := s.findDuplicate(ctx, story, fingerprint)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		s.logger.Debug().
			Int64("stories_id", dup.ID).
			Str("title", story.Title).
			Str("url", story.URL).
			Msg("found existing dup story")
		return dup, nil
	}

	if story.FullTextRSS == nil {
		fullTextRSS := medium.FullTextRSS
		if story.Description == nil || *story.Description == "" {
			fullTextRSS = false
		}
		story.FullTextRSS = &fullTextRSS
	}

	if tooLong(story.URL) || tooLong(story.GUID) {
		// Nothing has been written yet, so committing is harmless.
		s.logger.Error().
			Int64("media_id", story.MediaID).
			Int("url_length", utf8.RuneCountInString(story.URL)).
			Int("guid_length", utf8.RuneCountInString(story.GUID)).
			Msg("story url or guid is too long")
		return nil, nil
	}

	// Checking first keeps the expected conflict out of the database log.
	exists, err := s.stories.ExistsByGUID(ctx, story.MediaID, story.GUID)
	if err != nil {
		return nil, fmt.Errorf("check guid: %w", err)
	}
	if exists {
		return nil, errDuplicateGUID
	}

	if hasFingerprint {
		hash := fingerprint.String()
		story.NormalizedTitleHash = &hash
	}

	created, err := s.stories.Insert(ctx, story)
	if errors.Is(err, domain.ErrDuplicateGUID) {
		return nil, errDuplicateGUID
	}
	if err != nil {
		return nil, &IngestError{Story: *story, Err: err}
	}
	created.IsNew = true

	if err := s.recordAliases(ctx, created, created.URL, created.GUID); err != nil {
		return nil, err
	}

	if err := s.feeds.LinkStory(ctx, feedsID, created.ID); err != nil {
		return nil, fmt.Errorf("link story to feed %d: %w", feedsID, err)
	}

	s.logger.Debug().
		Int64("stories_id", created.ID).
		Str("url", created.URL).
		Msg("added story")

	return created, nil
}

// sanitize strips NUL bytes, which postgres rejects in text columns.
func sanitize(story domain.Story) domain.Story {
	story.URL = stripNUL(story.URL)
	story.GUID = stripNUL(story.GUID)
	story.Title = stripNUL(story.Title)
	if story.Description != nil {
		d := stripNUL(*story.Description)
		story.Description = &d
	}
	if story.Language != nil {
		l := stripNUL(*story.Language)
		story.Language = &l
	}
	return story
}

func stripNUL(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

func tooLong(s string) bool {
	return utf8.RuneCountInString(s) > domain.MaxURLLength
}
