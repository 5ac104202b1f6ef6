package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"feed_syncer/internal/config"
	"feed_syncer/internal/jobs"
	"feed_syncer/internal/publisher"
	"feed_syncer/internal/scheduler"
	"feed_syncer/internal/source/cj"
	"feed_syncer/internal/source/rakuten"
	"feed_syncer/internal/source/rss"
	"feed_syncer/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	feeds, err := config.LoadFeeds(cfg.FeedsFile)
	if err != nil {
		logger.Error("failed to load feed list", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	articleStore := postgres.NewArticleStore(db)
	couponStore := postgres.NewCouponStore(db)
	offerStore := postgres.NewOfferStore(db)
	advertiserStore := postgres.NewAdvertiserStore(db)
	merchantStore := postgres.NewMerchantStore(db)
	taxonomyStore := postgres.NewTaxonomyStore(db)
	syncStateStore := postgres.NewSyncStateStore(db)
	locker := postgres.NewAdvisoryLock(db)
	txManager := postgres.NewTransactionManager(db)

	rssSource := rss.New(rss.Config{
		Timeout:        cfg.HTTP.Timeout,
		MaxAttempts:    cfg.HTTP.Retry.MaxAttempts,
		InitialBackoff: cfg.HTTP.Retry.InitialBackoff,
		MaxBackoff:     cfg.HTTP.Retry.MaxBackoff,
	}, logger)

	rakutenCfg := rakuten.Config{
		TokenURL:            cfg.Rakuten.TokenURL,
		CouponURL:           cfg.Rakuten.CouponURL,
		OfferURL:            cfg.Rakuten.OfferURL,
		AdvertiserSearchURL: cfg.Rakuten.AdvertiserSearchURL,
		AdvertiserDetailURL: cfg.Rakuten.AdvertiserDetailURL,
		BearerToken:         cfg.Rakuten.BearerToken,
		PublisherSID:        cfg.Rakuten.PublisherSID,
		Scope:               cfg.Rakuten.Scope,
		OfferLimit:          cfg.Rakuten.OfferLimit,
		Timeout:             cfg.HTTP.Timeout,
		MaxAttempts:         cfg.HTTP.Retry.MaxAttempts,
		InitialBackoff:      cfg.HTTP.Retry.InitialBackoff,
		MaxBackoff:          cfg.HTTP.Retry.MaxBackoff,
	}
	// One instance per job keeps their access tokens independent.
	rakutenCoupons := rakuten.New(rakutenCfg, logger)
	rakutenOffers := rakuten.New(rakutenCfg, logger)
	rakutenMerchants := rakuten.New(rakutenCfg, logger)

	cjSource := cj.New(cj.Config{
		Token:               cfg.CJ.Token,
		WebsiteID:           cfg.CJ.WebsiteID,
		CompanyID:           cfg.CJ.CompanyID,
		LinkSearchURL:       cfg.CJ.LinkSearchURL,
		AdvertiserLookupURL: cfg.CJ.AdvertiserLookupURL,
		Timeout:             cfg.HTTP.Timeout,
		MaxAttempts:         cfg.HTTP.Retry.MaxAttempts,
		InitialBackoff:      cfg.HTTP.Retry.InitialBackoff,
		MaxBackoff:          cfg.HTTP.Retry.MaxBackoff,
	}, logger)

	sched := scheduler.New(cfg.Jobs.RunTimeout, logger)
	sched.Register(
		jobs.NewNewsFeedJob(feeds, rssSource, articleStore, taxonomyStore, syncStateStore, locker, rabbitMQ, logger),
		cfg.Jobs.News.Interval,
	)
	sched.Register(
		jobs.NewRakutenCouponJob(rakutenCoupons, couponStore, taxonomyStore, syncStateStore, locker, rabbitMQ, logger),
		cfg.Jobs.RakutenCoupon.Interval,
	)
	sched.Register(
		jobs.NewRakutenOfferJob(rakutenOffers, offerStore, syncStateStore, locker, rabbitMQ, logger),
		cfg.Jobs.RakutenOffer.Interval,
	)
	sched.Register(
		jobs.NewRakutenMerchantJob(rakutenMerchants, merchantStore, syncStateStore, locker, logger),
		cfg.Jobs.RakutenMerchant.Interval,
	)
	sched.Register(
		jobs.NewCJCouponJob(cjSource, couponStore, taxonomyStore, syncStateStore, locker, txManager, rabbitMQ, logger),
		cfg.Jobs.CJCoupon.Interval,
	)
	sched.Register(
		jobs.NewCJAdvertiserJob(cjSource, advertiserStore, syncStateStore, locker, rabbitMQ, logger),
		cfg.Jobs.CJAdvertiser.Interval,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting feed syncer", "feeds", len(feeds))

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
