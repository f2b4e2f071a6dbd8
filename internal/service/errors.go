package service

import (
	"errors"
	"fmt"

	"story_ingester/internal/domain"
)

// ErrInTransaction is returned when AddStory is called with a context that
// already carries a transaction. AddStory must own its transaction.
var ErrInTransaction = errors.New("add story can't be run from within a transaction")

// errDuplicateGUID aborts the ingest transaction when the candidate's guid
// is taken. AddStory turns it into an empty result.
var errDuplicateGUID = errors.New("story with this guid already exists")

// IngestError is a fatal failure while adding a story. It carries the
// candidate that could not be stored.
type IngestError struct {
	Story domain.Story
	Err   error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("error while adding story: %v; story: media_id=%d url=%q guid=%q title=%q publish_date=%s",
		e.Err,
		e.Story.MediaID,
		e.Story.URL,
		e.Story.GUID,
		e.Story.Title,
		e.Story.PublishDate.Format("2006-01-02 15:04:05"),
	)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}
