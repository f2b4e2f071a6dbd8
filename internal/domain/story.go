package domain

import (
	"strings"
	"time"
)

// NoTitle is the placeholder title feeds use for untitled items. Stories
// carrying it never take part in title/date duplicate matching.
const NoTitle = "(no title)"

// MaxURLLength is the longest url, guid or alias the stories schema accepts.
const MaxURLLength = 1024

type Story struct {
	ID                  int64     `db:"stories_id" json:"stories_id,omitempty"`
	MediaID             int64     `db:"media_id" json:"media_id"`
	URL                 string    `db:"url" json:"url"`
	GUID                string    `db:"guid" json:"guid"`
	Title               string    `db:"title" json:"title"`
	PublishDate         time.Time `db:"publish_date" json:"publish_date"`
	Description         *string   `db:"description" json:"description,omitempty"`
	Language            *string   `db:"language" json:"language,omitempty"`
	FullTextRSS         *bool     `db:"full_text_rss" json:"full_text_rss,omitempty"`
	NormalizedTitleHash *string   `db:"normalized_title_hash" json:"-"`
	CollectDate         time.Time `db:"collect_date" json:"collect_date"`

	// IsNew is set on stories created by the current AddStory call.
	IsNew bool `db:"-" json:"is_new,omitempty"`
}

type StoryURL struct {
	ID        int64  `db:"story_urls_id"`
	StoriesID int64  `db:"stories_id"`
	URL       string `db:"url"`
}

type FeedStoryLink struct {
	FeedsID   int64 `db:"feeds_id"`
	StoriesID int64 `db:"stories_id"`
}

type Medium struct {
	ID          int64  `db:"media_id"`
	Name        string `db:"name"`
	URL         string `db:"url"`
	FullTextRSS bool   `db:"full_text_rss"`
}

// Titled reports whether the story has a real headline that title/date
// duplicate matching may use.
func (s Story) Titled() bool {
	return s.Title != NoTitle && strings.TrimSpace(s.Title) != ""
}
