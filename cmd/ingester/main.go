package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"story_ingester/internal/cache"
	"story_ingester/internal/config"
	"story_ingester/internal/consumer"
	"story_ingester/internal/language"
	"story_ingester/internal/logging"
	"story_ingester/internal/publisher"
	"story_ingester/internal/scheduler"
	"story_ingester/internal/service"
	"story_ingester/internal/storage/postgres"
	"story_ingester/internal/title"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := logging.Default()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	logger, err = logging.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		fallback := logging.Default()
		fallback.Fatal().Err(err).Msg("failed to set up logger")
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	if err := db.Ping(); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping database")
	}
	logger.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("connected to database")

	registry, err := language.NewRegistry(cfg.Ingest.Languages...)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load languages")
	}
	fingerprinter := title.NewFingerprinter(language.NewDetector(registry))

	// Initialize stores
	storyStore := postgres.NewStoryStore(db)
	storyURLStore := postgres.NewStoryURLStore(db)
	feedStore := postgres.NewFeedStore(db)
	mediaCache := cache.NewMediaCache(postgres.NewMediaStore(db), cfg.Ingest.MediaCacheTTL)
	txManager := postgres.NewTransactionManager(db)

	ingestService := service.NewIngestService(
		storyStore,
		storyURLStore,
		feedStore,
		mediaCache,
		txManager,
		fingerprinter,
		logger,
	)

	events, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.EventsRoutingKey,
		QueueName:  cfg.RabbitMQ.EventsQueue,
	}, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect publisher to rabbitmq")
	}
	defer events.Close()

	intake, err := consumer.NewRabbitMQ(consumer.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		QueueName:  cfg.RabbitMQ.CandidateQueue,
		RoutingKey: cfg.RabbitMQ.CandidateRoutingKey,
		Prefetch:   cfg.RabbitMQ.Prefetch,
		Workers:    cfg.Ingest.Workers,
	}, ingestService, events, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect consumer to rabbitmq")
	}
	defer intake.Close()

	stats := scheduler.NewScheduler(intake, cfg.Ingest.StatsInterval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
	}()

	logger.Info().
		Int("workers", cfg.Ingest.Workers).
		Strs("languages", registry.Codes()).
		Str("queue", cfg.RabbitMQ.CandidateQueue).
		Msg("starting story ingester")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return intake.Run(ctx)
	})
	g.Go(func() error {
		return stats.Start(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("ingester stopped")
		os.Exit(1)
	}
	logger.Info().Msg("ingester stopped")
}
