package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"story_ingester/internal/consumer/mocks"
	"story_ingester/internal/domain"
	"story_ingester/internal/testutil"
)

const candidateBody = `{
	"feeds_id": "3",
	"story": {
		"media_id": 7,
		"url": "http://example.com/a",
		"guid": "guid-a",
		"title": "Council approves budget",
		"publish_date": "2024-03-01 09:30:00",
		"description": "The vote passed."
	}
}`

type ConsumerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	adder     *mocks.MockStoryAdder
	publisher *mocks.MockPublisher
	consumer  *Consumer
	ctx       context.Context
}

func (s *ConsumerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.adder = mocks.NewMockStoryAdder(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.consumer = New(s.adder, s.publisher, 2, zerolog.Nop())
	s.ctx = context.Background()
}

func (s *ConsumerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestConsumerTestSuite(t *testing.T) {
	suite.Run(t, new(ConsumerTestSuite))
}

func (s *ConsumerTestSuite) expectedCandidate() domain.Story {
	return domain.Story{
		MediaID:     7,
		URL:         "http://example.com/a",
		GUID:        "guid-a",
		Title:       "Council approves budget",
		PublishDate: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		Description: testutil.Ptr("The vote passed."),
	}
}

func (s *ConsumerTestSuite) TestHandle_NewStoryIsPublished() {
	created := s.expectedCandidate()
	created.ID = 42
	created.IsNew = true

	s.adder.EXPECT().AddStory(s.ctx, s.expectedCandidate(), int64(3)).Return(&created, nil)
	s.publisher.EXPECT().Publish(s.ctx, &created, int64(3)).Return(nil)

	outcome := s.consumer.Handle(s.ctx, []byte(candidateBody))

	s.Equal(OutcomeNew, outcome)
	s.Equal(domain.IngestStats{New: 1, Published: 1}, s.consumer.Stats())
}

func (s *ConsumerTestSuite) TestHandle_DuplicateIsNotPublished() {
	existing := s.expectedCandidate()
	existing.ID = 11

	s.adder.EXPECT().AddStory(s.ctx, gomock.Any(), int64(3)).Return(&existing, nil)

	outcome := s.consumer.Handle(s.ctx, []byte(candidateBody))

	s.Equal(OutcomeDuplicate, outcome)
	s.Equal(domain.IngestStats{Duplicate: 1}, s.consumer.Stats())
}

func (s *ConsumerTestSuite) TestHandle_SoftRejection() {
	s.adder.EXPECT().AddStory(s.ctx, gomock.Any(), int64(3)).Return(nil, nil)

	outcome := s.consumer.Handle(s.ctx, []byte(candidateBody))

	s.Equal(OutcomeRejected, outcome)
	s.Equal(domain.IngestStats{Rejected: 1}, s.consumer.Stats())
}

func (s *ConsumerTestSuite) TestHandle_IngestFailure() {
	s.adder.EXPECT().AddStory(s.ctx, gomock.Any(), int64(3)).Return(nil, errors.New("connection reset"))

	outcome := s.consumer.Handle(s.ctx, []byte(candidateBody))

	s.Equal(OutcomeFailed, outcome)
	s.Equal(domain.IngestStats{Failed: 1}, s.consumer.Stats())
}

func (s *ConsumerTestSuite) TestHandle_PublishFailureStillCountsNew() {
	created := s.expectedCandidate()
	created.ID = 42
	created.IsNew = true

	s.adder.EXPECT().AddStory(s.ctx, gomock.Any(), int64(3)).Return(&created, nil)
	s.publisher.EXPECT().Publish(s.ctx, &created, int64(3)).Return(errors.New("channel closed"))

	outcome := s.consumer.Handle(s.ctx, []byte(candidateBody))

	s.Equal(OutcomeNew, outcome)
	s.Equal(domain.IngestStats{New: 1}, s.consumer.Stats())
}

func (s *ConsumerTestSuite) TestHandle_InvalidBody() {
	bodies := []string{
		`not json`,
		`{"feeds_id": 3, "story": {"url": "http://example.com/a", "guid": "a", "publish_date": "2024-03-01"}}`,
		`{"feeds_id": 3, "story": {"media_id": 7, "guid": "a", "publish_date": "2024-03-01"}}`,
		`{"feeds_id": 3, "story": {"media_id": 7, "url": "http://example.com/a", "publish_date": "2024-03-01"}}`,
		`{"feeds_id": 3, "story": {"media_id": 7, "url": "http://example.com/a", "guid": "a"}}`,
		`{"feeds_id": "three", "story": {"media_id": 7, "url": "http://example.com/a", "guid": "a", "publish_date": "2024-03-01"}}`,
		`{"story": {"media_id": 7, "url": "http://example.com/a", "guid": "a", "publish_date": "2024-03-01"}}`,
	}

	for _, body := range bodies {
		s.Equal(OutcomeInvalid, s.consumer.Handle(s.ctx, []byte(body)), body)
	}
	s.Equal(int64(len(bodies)), s.consumer.Stats().Failed)
}

func (s *ConsumerTestSuite) TestHandle_WithoutPublisher() {
	c := New(s.adder, nil, 0, zerolog.Nop())
	created := s.expectedCandidate()
	created.ID = 1
	created.IsNew = true

	s.adder.EXPECT().AddStory(s.ctx, gomock.Any(), int64(3)).Return(&created, nil)

	s.Equal(OutcomeNew, c.Handle(s.ctx, []byte(candidateBody)))
	s.Equal(1, c.workers)
}

func (s *ConsumerTestSuite) TestRun_NotConnected() {
	err := s.consumer.Run(s.ctx)
	s.Error(err)
}

func (s *ConsumerTestSuite) TestDecodeCandidate_FeedIDForms() {
	cases := map[string]int64{
		`{"feeds_id": 12, "story": {"media_id": 1, "url": "u", "guid": "g", "publish_date": "2024-03-01T10:00:00Z"}}`:     12,
		`{"feeds_id": "12", "story": {"media_id": 1, "url": "u", "guid": "g", "publish_date": "2024-03-01T10:00:00Z"}}`:   12,
		`{"feeds_id": " 12 ", "story": {"media_id": 1, "url": "u", "guid": "g", "publish_date": "2024-03-01T10:00:00Z"}}`: 12,
	}

	for body, want := range cases {
		msg, err := DecodeCandidate([]byte(body))
		s.Require().NoError(err, body)
		s.Equal(FeedID(want), msg.FeedsID)
	}
}

func (s *ConsumerTestSuite) TestDecodeCandidate_PublishDateForms() {
	want := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	dates := []string{
		"2024-03-01T09:30:00Z",
		"2024-03-01T11:30:00+02:00",
		"2024-03-01 09:30:00",
		"2024-03-01T09:30:00",
		"2024-03-01 09:30",
		"2024-03-01T09:30",
	}

	for _, date := range dates {
		body := `{"feeds_id": 1, "story": {"media_id": 1, "url": "u", "guid": "g", "publish_date": "` + date + `"}}`
		msg, err := DecodeCandidate([]byte(body))
		s.Require().NoError(err, date)
		s.True(want.Equal(msg.ToDomain().PublishDate), date)
	}

	_, err := DecodeCandidate([]byte(`{"feeds_id": 1, "story": {"media_id": 1, "url": "u", "guid": "g", "publish_date": "yesterday"}}`))
	s.Error(err)
}

func (s *ConsumerTestSuite) TestDecodeCandidate_ValidationErrors() {
	_, err := DecodeCandidate([]byte(`{"feeds_id": 1, "story": {"url": "u", "guid": "g", "publish_date": "2024-03-01"}}`))
	s.ErrorIs(err, ErrMissingMediaID)

	_, err = DecodeCandidate([]byte(`{"feeds_id": 1, "story": {"media_id": 1, "url": " ", "guid": "g", "publish_date": "2024-03-01"}}`))
	s.ErrorIs(err, ErrMissingURL)

	_, err = DecodeCandidate([]byte(`{"feeds_id": 1, "story": {"media_id": 1, "url": "u", "publish_date": "2024-03-01"}}`))
	s.ErrorIs(err, ErrMissingGUID)

	_, err = DecodeCandidate([]byte(`{"feeds_id": null, "story": {"media_id": 1, "url": "u", "guid": "g", "publish_date": "2024-03-01"}}`))
	s.ErrorIs(err, ErrMissingFeedID)
}

func (s *ConsumerTestSuite) TestOutcome_String() {
	s.Equal("new", OutcomeNew.String())
	s.Equal("invalid", OutcomeInvalid.String())
	s.Equal("unknown", Outcome(99).String())
}
