package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/ariefcatur/go-repair-shop/internal/cart"
	"github.com/ariefcatur/go-repair-shop/internal/catalog"
	"github.com/ariefcatur/go-repair-shop/internal/checkout"
	"github.com/ariefcatur/go-repair-shop/internal/config"
	"github.com/ariefcatur/go-repair-shop/internal/events"
	"github.com/ariefcatur/go-repair-shop/internal/httpx"
	kafkax "github.com/ariefcatur/go-repair-shop/internal/kafka"
	"github.com/ariefcatur/go-repair-shop/internal/locale"
	"github.com/ariefcatur/go-repair-shop/internal/logger"
	"github.com/ariefcatur/go-repair-shop/internal/notify"
	"github.com/ariefcatur/go-repair-shop/internal/postgres"
	"github.com/ariefcatur/go-repair-shop/internal/redisx"
	"github.com/ariefcatur/go-repair-shop/internal/session"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(logger.Options{Service: cfg.ServiceName, Env: cfg.AppEnv, Level: cfg.LogLevel})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("api exited", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	// Catalog
	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	// Storage
	var (
		cartStorage cart.Storage       = cart.NewMemoryStorage()
		prefs       locale.Preferences = locale.NewMemoryPreferences()
	)
	if cfg.StorageBackend == "redis" {
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		if err := redisx.Ping(ctx, rdb); err != nil {
			log.Warn("redis not reachable yet", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		cartStorage = cart.NewRedisStorage(rdb, cfg.CartTTL)
		prefs = locale.NewRedisPreferences(rdb)
	}

	g, gctx := errgroup.WithContext(ctx)

	// Notifications
	var notifier notify.Notifier = notify.LogNotifier{Log: log}
	if cfg.NotifyBackend == "kafka" && len(cfg.KafkaBrokers) > 0 {
		prod := kafkax.NewProducer(cfg.KafkaBrokers, events.TopicNotificationRequested, 1024, log)
		prod.Start(ctx)
		defer func() {
			prod.Close() // close inbox, the loop flushes and closes the writer
			prod.WaitClosed()
		}()
		notifier = &notify.KafkaNotifier{Producer: prod, Service: cfg.ServiceName}
	}

	reg := session.NewRegistry(session.Deps{
		CartStorage: cartStorage,
		Notifier:    notifier,
		Catalog:     cat,
		LinkBase:    cfg.WhatsAppBase,
		Location:    cfg.Location(),
		SubmitDelay: cfg.SubmitDelay,
		Log:         log,
	})

	router := httpx.NewRouter()
	httpx.Mount(router, reg,
		&httpx.CatalogHandler{Catalog: cat},
		&httpx.CartHandler{
			Catalog:  cat,
			Checkout: &checkout.Service{Notifier: notifier, LinkBase: cfg.WhatsAppBase},
			Log:      log,
		},
		&httpx.BookingHandler{Location: cfg.Location()},
		&httpx.LocaleHandler{Prefs: prefs, Log: log},
	)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router, ReadHeaderTimeout: 5 * time.Second}

	g.Go(func() error {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		reg.RunSweeper(gctx, time.Minute, cfg.SessionIdle)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func loadCatalog(ctx context.Context, cfg config.Config) (*catalog.Index, error) {
	if cfg.CatalogBackend != "postgres" {
		ds, err := catalog.LoadStatic()
		if err != nil {
			return nil, err
		}
		return catalog.NewIndex(ds), nil
	}

	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	ds, err := (&catalog.Repo{DB: db}).Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.NewIndex(ds), nil
}
