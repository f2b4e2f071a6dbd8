package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"story_ingester/internal/domain"
)

// StatsSource exposes running ingest counters.
type StatsSource interface {
	Stats() domain.IngestStats
}

// Scheduler periodically logs ingest counters and the change since the
// previous tick.
type Scheduler struct {
	source   StatsSource
	interval time.Duration
	logger   zerolog.Logger
	last     domain.IngestStats
}

func NewScheduler(source StatsSource, interval time.Duration, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		source:   source,
		interval: interval,
		logger:   logger.With().Str("component", "stats").Logger(),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("stats reporter started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.report()
			s.logger.Info().Msg("stats reporter stopped")
			return ctx.Err()
		case <-ticker.C:
			s.report()
		}
	}
}

func (s *Scheduler) report() domain.IngestStats {
	current := s.source.Stats()
	delta := current.Sub(s.last)
	s.last = current

	s.logger.Info().
		Int64("new", current.New).
		Int64("duplicate", current.Duplicate).
		Int64("rejected", current.Rejected).
		Int64("failed", current.Failed).
		Int64("published", current.Published).
		Int64("processed_since_last", delta.Total()).
		Msg("ingest stats")

	return delta
}
