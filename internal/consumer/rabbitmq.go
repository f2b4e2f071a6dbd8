package consumer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"story_ingester/internal/domain"
	"story_ingester/internal/publisher"
)

var ErrDeliveriesClosed = errors.New("delivery channel closed")

type Config struct {
	URL        string
	Exchange   string
	QueueName  string
	RoutingKey string
	Prefetch   int
	Workers    int
}

// Outcome is the result of handling one candidate delivery.
type Outcome int

const (
	OutcomeNew Outcome = iota
	OutcomeDuplicate
	OutcomeRejected
	OutcomeFailed
	OutcomeInvalid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNew:
		return "new"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	case OutcomeInvalid:
		return "invalid"
	}
	return "unknown"
}

type Consumer struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queue     string
	workers   int
	adder     StoryAdder
	publisher Publisher
	logger    zerolog.Logger

	processed struct {
		new, duplicate, rejected, failed, published atomic.Int64
	}
}

// New builds a consumer without a broker connection. Handle can be used
// directly; Run requires Connect.
func New(adder StoryAdder, pub Publisher, workers int, logger zerolog.Logger) *Consumer {
	if workers < 1 {
		workers = 1
	}
	return &Consumer{
		workers:   workers,
		adder:     adder,
		publisher: pub,
		logger:    logger.With().Str("component", "consumer").Logger(),
	}
}

// NewRabbitMQ connects to the broker and declares the candidate queue.
func NewRabbitMQ(cfg Config, adder StoryAdder, pub Publisher, logger zerolog.Logger) (*Consumer, error) {
	c := New(adder, pub, cfg.Workers, logger)
	if err := c.connect(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Consumer) connect(cfg Config) error {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	if err := publisher.DeclareQueue(ch, cfg.Exchange, cfg.QueueName, cfg.RoutingKey); err != nil {
		ch.Close()
		conn.Close()
		return err
	}

	prefetch := cfg.Prefetch
	if prefetch < c.workers {
		prefetch = c.workers
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("set qos: %w", err)
	}

	c.conn = conn
	c.channel = ch
	c.queue = cfg.QueueName

	c.logger.Info().
		Str("exchange", cfg.Exchange).
		Str("queue", cfg.QueueName).
		Int("prefetch", prefetch).
		Int("workers", c.workers).
		Msg("connected to rabbitmq")

	return nil
}

// Run consumes candidates with the configured number of workers until ctx
// is cancelled or the broker closes the delivery channel.
func (c *Consumer) Run(ctx context.Context) error {
	if c.channel == nil {
		return errors.New("consumer is not connected")
	}

	deliveries, err := c.channel.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < c.workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case d, ok := <-deliveries:
					if !ok {
						if ctx.Err() != nil {
							return nil
						}
						return ErrDeliveriesClosed
					}
					c.deliver(ctx, d)
				}
			}
		})
	}
	return g.Wait()
}

func (c *Consumer) deliver(ctx context.Context, d amqp.Delivery) {
	outcome := c.Handle(ctx, d.Body)

	var err error
	switch outcome {
	case OutcomeInvalid:
		err = d.Reject(false)
	case OutcomeFailed:
		// one retry; a second failure drops the candidate
		err = d.Nack(false, !d.Redelivered)
	default:
		err = d.Ack(false)
	}
	if err != nil {
		c.logger.Error().Err(err).Uint64("delivery_tag", d.DeliveryTag).Msg("failed to settle delivery")
	}
}

// Handle decodes one candidate, passes it to AddStory and announces the
// story if it was created.
func (c *Consumer) Handle(ctx context.Context, body []byte) Outcome {
	msg, err := DecodeCandidate(body)
	if err != nil {
		c.processed.failed.Add(1)
		c.logger.Warn().Err(err).Msg("dropping invalid candidate")
		return OutcomeInvalid
	}

	feedsID := int64(msg.FeedsID)
	story, err := c.adder.AddStory(ctx, msg.ToDomain(), feedsID)
	if err != nil {
		c.processed.failed.Add(1)
		return OutcomeFailed
	}

	if story == nil {
		c.processed.rejected.Add(1)
		return OutcomeRejected
	}

	if !story.IsNew {
		c.processed.duplicate.Add(1)
		c.logger.Debug().
			Int64("stories_id", story.ID).
			Str("url", msg.Story.URL).
			Msg("duplicate story")
		return OutcomeDuplicate
	}

	c.processed.new.Add(1)
	if c.publisher != nil {
		if err := c.publisher.Publish(ctx, story, feedsID); err != nil {
			c.logger.Error().Err(err).Int64("stories_id", story.ID).Msg("failed to publish story event")
		} else {
			c.processed.published.Add(1)
		}
	}
	return OutcomeNew
}

func (c *Consumer) Stats() domain.IngestStats {
	return domain.IngestStats{
		New:       c.processed.new.Load(),
		Duplicate: c.processed.duplicate.Load(),
		Rejected:  c.processed.rejected.Load(),
		Failed:    c.processed.failed.Load(),
		Published: c.processed.published.Load(),
	}
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
