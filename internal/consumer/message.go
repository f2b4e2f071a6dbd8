package consumer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"story_ingester/internal/domain"
)

var (
	ErrMissingMediaID = errors.New("candidate has no media_id")
	ErrMissingURL     = errors.New("candidate has no url")
	ErrMissingGUID    = errors.New("candidate has no guid")
	ErrMissingFeedID  = errors.New("candidate has no feeds_id")
	ErrMissingDate    = errors.New("candidate has no publish_date")
)

// FeedID accepts feeds_id as a JSON number or a numeric string.
type FeedID int64

func (f *FeedID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("feeds_id %s is not an integer", data)
	}
	*f = FeedID(id)
	return nil
}

// Timestamp accepts RFC 3339 as well as the "2006-01-02 15:04:05" form
// feed parsers usually emit, with or without seconds. Values without a zone
// are read as UTC.
type Timestamp time.Time

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("publish_date must be a string: %w", err)
	}
	raw = strings.TrimSpace(raw)

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			*t = Timestamp(parsed)
			return nil
		}
	}
	return fmt.Errorf("publish_date %q has an unknown format", raw)
}

type CandidateStory struct {
	MediaID     int64     `json:"media_id"`
	URL         string    `json:"url"`
	GUID        string    `json:"guid"`
	Title       string    `json:"title"`
	PublishDate Timestamp `json:"publish_date"`
	Description *string   `json:"description"`
	Language    *string   `json:"language"`
	FullTextRSS *bool     `json:"full_text_rss"`
}

// CandidateMessage is the body of a story candidate delivery.
type CandidateMessage struct {
	FeedsID FeedID         `json:"feeds_id"`
	Story   CandidateStory `json:"story"`
}

func (m CandidateMessage) Validate() error {
	switch {
	case m.FeedsID <= 0:
		return ErrMissingFeedID
	case m.Story.MediaID <= 0:
		return ErrMissingMediaID
	case strings.TrimSpace(m.Story.URL) == "":
		return ErrMissingURL
	case strings.TrimSpace(m.Story.GUID) == "":
		return ErrMissingGUID
	case time.Time(m.Story.PublishDate).IsZero():
		return ErrMissingDate
	}
	return nil
}

func (m CandidateMessage) ToDomain() domain.Story {
	return domain.Story{
		MediaID:     m.Story.MediaID,
		URL:         m.Story.URL,
		GUID:        m.Story.GUID,
		Title:       m.Story.Title,
		PublishDate: time.Time(m.Story.PublishDate),
		Description: m.Story.Description,
		Language:    m.Story.Language,
		FullTextRSS: m.Story.FullTextRSS,
	}
}

// DecodeCandidate parses and validates a delivery body.
func DecodeCandidate(body []byte) (CandidateMessage, error) {
	var msg CandidateMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return msg, fmt.Errorf("decode candidate: %w", err)
	}
	if err := msg.Validate(); err != nil {
		return msg, err
	}
	return msg, nil
}
