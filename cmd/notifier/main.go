package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariefcatur/go-repair-shop/internal/config"
	"github.com/ariefcatur/go-repair-shop/internal/events"
	kafkax "github.com/ariefcatur/go-repair-shop/internal/kafka"
	"github.com/ariefcatur/go-repair-shop/internal/logger"
	"github.com/ariefcatur/go-repair-shop/internal/notify"
	"github.com/ariefcatur/go-repair-shop/internal/redisx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	service := cfg.ServiceName + "-notifier"

	log, err := logger.New(logger.Options{Service: service, Env: cfg.AppEnv, Level: cfg.LogLevel})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	relay := &notify.Relay{
		Sink:    notify.LogNotifier{Log: log},
		Service: service,
		Log:     log,
	}
	if cfg.StorageBackend == "redis" {
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		relay.Redis = rdb
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.NotifierGroup, events.TopicNotificationRequested, cfg.NotifierWorkers, log)
	log.Info("notifier consumer started",
		zap.String("group", cfg.NotifierGroup),
		zap.String("topic", events.TopicNotificationRequested),
		zap.Int("workers", cfg.NotifierWorkers))

	if err := cons.Start(ctx, relay.HandleRequested); err != nil && ctx.Err() == nil {
		log.Error("consumer exit", zap.Error(err))
		os.Exit(1)
	}
	log.Info("shutting down consumer...")
}
