//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"story_ingester/internal/domain"
	"story_ingester/internal/testutil"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    zerolog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = zerolog.Nop()

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishCreated() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-created",
		RoutingKey: "test-routing-key-created",
		QueueName:  "test-queue-created",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	story := &domain.Story{
		ID:          42,
		MediaID:     7,
		URL:         "http://example.com/a",
		GUID:        "guid-a",
		Title:       "Council approves budget",
		PublishDate: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		Description: testutil.Ptr("The vote passed."),
		FullTextRSS: testutil.Ptr(false),
		CollectDate: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		IsNew:       true,
	}

	err = pub.Publish(s.ctx, story, 3)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal("application/json", msg.ContentType)

	var received StoryMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(ActionCreated, received.Action)
	s.Equal(int64(3), received.FeedsID)
	s.Equal(int64(42), received.Story.ID)
	s.Equal(int64(7), received.Story.MediaID)
	s.Equal("guid-a", received.Story.GUID)
	s.Equal("Council approves budget", received.Story.Title)
	s.Require().NotNil(received.Story.Description)
	s.Equal("The vote passed.", *received.Story.Description)
	s.Require().NotNil(received.Story.FullTextRSS)
	s.False(*received.Story.FullTextRSS)
	s.True(received.Story.PublishDate.Equal(story.PublishDate))
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessagePersistence() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-persist",
		RoutingKey: "test-routing-key-persist",
		QueueName:  "test-queue-persist",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	story := &domain.Story{
		ID:          1,
		MediaID:     1,
		URL:         "http://example.com/persist",
		GUID:        "persist",
		Title:       "Persistent story",
		PublishDate: time.Now().UTC(),
	}

	err = pub.Publish(s.ctx, story, 1)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
