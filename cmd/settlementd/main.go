package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	app "github.com/muhammadchandra19/auctionhouse/internal/app/engine"
	"github.com/muhammadchandra19/auctionhouse/internal/bootstrap"
	consumer "github.com/muhammadchandra19/auctionhouse/internal/consumer/lot-event"
	"github.com/muhammadchandra19/auctionhouse/pkg/config"
	"github.com/muhammadchandra19/auctionhouse/pkg/httplib/healthcheck"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
	"github.com/muhammadchandra19/auctionhouse/pkg/postgresql"
	"github.com/muhammadchandra19/auctionhouse/pkg/redis"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	if err := config.Load(cfg); err != nil {
		panic(err)
	}

	l, err := logger.NewLogger(
		logger.WithServiceName(cfg.ServiceName),
		logger.WithLoggingLevel(logger.ParseLevel(cfg.LogLevel)),
	)
	if err != nil {
		panic(err)
	}

	log = l
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	rclient := redis.NewClient(log, &cfg.Redis)
	if err := rclient.Connect(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "connect_redis",
		})
		return
	}

	// The history pipeline rides on the record topic, so postgres is only
	// dialed when Kafka is configured.
	var pgClient postgresql.PostgreSQLClient
	if cfg.Kafka.Enabled() {
		var err error
		pgClient, err = postgresql.NewClient(ctx, cfg.Postgres)
		if err != nil {
			log.Error(err, logger.Field{
				Key:   "action",
				Value: "connect_postgres",
			})
			return
		}
		defer pgClient.Close()
	}

	b, err := (&bootstrap.Bootstrap{}).Init(bootstrap.BootstrapConfig{
		Config:   cfg,
		Logger:   log,
		Postgres: pgClient,
		Redis:    rclient,
	})
	if err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "bootstrap",
		})
		return
	}

	engine := app.NewEngineWithOptions(b.Usecase.Router, b.Usecase.Snapshots, log, &app.Options{
		SnapshotInterval: cfg.SnapshotInterval,
	})

	// Start restores the latest checkpoint first; configured assets register
	// afterwards so new entries apply on top of restored state.
	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "start_engine",
		})
		return
	}

	if err := registerAssets(ctx, b); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "register_assets",
		})
		return
	}

	var lotEventConsumer *consumer.LotEventConsumer
	if cfg.Kafka.Enabled() {
		lotEventConsumer = consumer.NewLotEventConsumer(
			cfg.Kafka,
			b.Usecase.History,
			log,
			postgresql.NewTransaction(pgClient),
		)
		go lotEventConsumer.Start(ctx)
		go lotEventConsumer.Subscribe(ctx)
	}

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: healthcheck.HealthCheck{ServiceName: cfg.ServiceName}.Handler(http.NotFoundHandler()),
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(err, logger.Field{
				Key:   "action",
				Value: "http_listen",
			})
		}
	}()

	log.Info("settlement daemon started", logger.Field{
		Key:   "httpAddr",
		Value: cfg.HTTPAddr,
	}, logger.Field{
		Key:   "kafkaEnabled",
		Value: cfg.Kafka.Enabled(),
	})

	sig := <-sigChan
	log.Info("received shutdown signal", logger.Field{
		Key:   "signal",
		Value: sig.String(),
	})

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "shutdown_http",
		})
	}

	if lotEventConsumer != nil {
		if err := lotEventConsumer.Stop(); err != nil {
			log.Error(err, logger.Field{
				Key:   "action",
				Value: "stop_consumer",
			})
		}
	}

	if err := engine.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "stop_engine",
		})
	}

	if closer, ok := b.Usecase.Publisher.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Error(err, logger.Field{
				Key:   "action",
				Value: "close_publisher",
			})
		}
	}

	if closer, ok := rclient.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Error(err, logger.Field{
				Key:   "action",
				Value: "close_redis_client",
			})
		}
	}

	log.Info("settlement daemon shutdown complete")
}

// registerAssets seeds the ledger from the ASSETS config, one "ID:decimals"
// pair per entry.
func registerAssets(ctx context.Context, b *bootstrap.Bootstrap) error {
	for _, entry := range cfg.Assets {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		id, decimalsPart, ok := strings.Cut(entry, ":")
		if !ok {
			return fmt.Errorf("invalid asset entry %q, want ID:decimals", entry)
		}
		decimals, err := strconv.ParseUint(decimalsPart, 10, 8)
		if err != nil {
			return fmt.Errorf("invalid decimals in asset entry %q: %w", entry, err)
		}

		if err := b.Usecase.Ledger.RegisterAsset(ctx, id, uint8(decimals)); err != nil {
			return err
		}
	}
	return nil
}
