package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"comunidad/internal/audit"
	"comunidad/internal/platform/config"
	"comunidad/internal/platform/httpserver"
	"comunidad/internal/platform/logger"
	"comunidad/internal/platform/metrics"
	platformredis "comunidad/internal/platform/redis"
	"comunidad/internal/portal/billing"
	"comunidad/internal/portal/board"
	"comunidad/internal/portal/reservations"
	"comunidad/internal/portal/session"
	"comunidad/internal/portal/visitors"
	"comunidad/internal/storage"
	"comunidad/internal/store"
	httpapi "comunidad/internal/transport/http"
)

const auditQueueDepth = 256

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal/portal services.
func main() {
	if err := run(); err != nil {
		logger.New().Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()
	log := logger.New()

	kv, cleanup, err := newKV(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	sink, closeSink, err := newAuditSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSink()

	queue := audit.NewQueue(sink, auditQueueDepth)
	publisher := audit.NewPublisher(queue)

	st := store.New(kv)
	m := metrics.New()

	handler := httpapi.NewHandler(
		log,
		m,
		session.New(st, m, publisher),
		billing.New(st, m, publisher),
		reservations.New(st, m, publisher),
		visitors.New(st, m, publisher),
		board.New(st, m, publisher),
	)

	srv := httpserver.New(cfg.Addr, httpapi.NewRouter(handler))

	log.Info("starting comunidad portal", "addr", cfg.Addr, "backend", string(cfg.Backend))

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		if err := queue.Worker().Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

// newKV selects the key-value substrate from config. The returned cleanup is
// always safe to call.
func newKV(ctx context.Context, cfg config.Server) (storage.KV, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case config.BackendMemory:
		return storage.NewMemory(), noop, nil

	case config.BackendFile:
		kv, err := storage.NewFile(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		return kv, noop, nil

	case config.BackendRedis:
		client, err := platformredis.New(cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		if client == nil {
			return nil, noop, errors.New("redis backend selected but COMUNIDAD_REDIS_URL is empty")
		}
		return storage.NewRedis(client.Client), func() { client.Close() }, nil

	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, noop, err
		}
		kv := storage.NewPostgres(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return kv, pool.Close, nil

	default:
		return nil, noop, errors.New("unknown backend " + string(cfg.Backend))
	}
}

// newAuditSink prefers Kafka when brokers are configured and falls back to an
// in-process store otherwise.
func newAuditSink(ctx context.Context, cfg config.Server) (audit.Store, func(), error) {
	if cfg.KafkaBrokers == "" {
		return audit.NewInMemoryStore(), func() {}, nil
	}
	sink, err := audit.NewKafkaStore(ctx, cfg.KafkaBrokers, cfg.AuditTopic)
	if err != nil {
		return nil, func() {}, err
	}
	return sink, sink.Close, nil
}
