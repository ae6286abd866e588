package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"tabi/internal/chat"
	"tabi/internal/config"
	"tabi/internal/events"
	apphttp "tabi/internal/http"
	"tabi/internal/ledger"
	"tabi/internal/log"
	"tabi/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := log.New(log.Config{Level: slog.LevelInfo, Component: log.ComponentApp})
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", log.FieldError, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("fatal", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	var persister ledger.Persister
	switch cfg.DataBackend {
	case "memory":
		persister = storage.NewMemoryStore()
		logger.Info("storage ready", log.FieldBackend, "memory")
	default:
		db, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		persister = db
		logger.Info("storage ready", log.FieldBackend, "sqlite", "path", cfg.SQLiteDBPath)
	}

	opts := ledger.DefaultOptions()

	if cfg.AMQPURL != "" {
		pub, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			// The event feed is auxiliary; the app runs without it.
			logger.Warn("event feed unavailable", log.FieldError, err)
		} else {
			defer pub.Close()
			opts.Notifier = pub
			logger.Info("event feed connected", "exchange", cfg.AMQPExchange)
		}
	}

	store := ledger.New(persister, opts)
	if err := store.Load(ctx); err != nil {
		return err
	}
	logger.Info("ledger loaded", "records", len(store.Items()), log.FieldRate, store.Rate().String())

	var assistant chat.Assistant
	if cfg.GeminiAPIKey == "" {
		assistant = chat.Disabled{}
		logger.Warn("chat assistant disabled: no API key")
	} else {
		g, err := chat.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return err
		}
		assistant = g
		logger.Info("chat assistant ready", log.FieldModel, cfg.GeminiModel)
	}

	srv, err := apphttp.NewServer(apphttp.Config{
		Addr:        ":" + cfg.Port,
		Store:       store,
		Assistant:   assistant,
		ChatTimeout: cfg.ChatTimeout,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	return g.Wait()
}
