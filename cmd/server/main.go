package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"news_alerts/internal/classifier"
	"news_alerts/internal/config"
	"news_alerts/internal/consumer"
	"news_alerts/internal/relay"
	"news_alerts/internal/scheduler"
	"news_alerts/internal/server"
	"news_alerts/internal/service"
	"news_alerts/internal/storage/postgres"
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

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Stores
	userStore := postgres.NewUserStore(db)
	regionStore := postgres.NewRegionStore(db)
	tickerStore := postgres.NewTickerStore(db)
	newsStore := postgres.NewNewsStore(db)
	txManager := postgres.NewTransactionManager(db)

	// External collaborators
	claude := classifier.New(cfg.Classifier, logger)
	botRelay := relay.NewWebhook(cfg.Relay, logger)

	// Services
	newsService := service.NewNewsService(newsStore, regionStore, userStore, txManager, logger)
	subsService := service.NewSubscriptionService(userStore, tickerStore, logger)
	registryService := service.NewRegistryService(tickerStore, regionStore, txManager, logger)
	ingestService := service.NewIngestService(regionStore, claude, newsService, botRelay, logger)
	digestService := service.NewDigestService(newsService, userStore, claude, botRelay, cfg.Digest.TopN, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := registryService.SeedRegions(ctx); err != nil {
		logger.Error("failed to seed regions", "error", err)
		os.Exit(1)
	}

	// Raw-news consumer
	rawConsumer, err := consumer.NewRabbitMQ(consumer.Config{
		URL:       cfg.RabbitMQ.URL,
		Exchange:  cfg.RabbitMQ.Exchange,
		QueueName: cfg.RabbitMQ.QueueName,
	}, ingestService, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rawConsumer.Close()

	go func() {
		if err := rawConsumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("consumer error", "error", err)
		}
	}()

	if cfg.Digest.Enabled {
		sched := scheduler.NewScheduler(digestService, logger)
		go func() {
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	// HTTP API
	srv := server.New(newsService, subsService, registryService, botRelay, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Router(),
	}

	go func() {
		logger.Info("starting http server", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig)
	case <-ctx.Done():
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
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
