package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"mealog/internal/blobstore"
	"mealog/internal/meals/events"
	"mealog/internal/platform/config"
	"mealog/internal/platform/kafka"
	"mealog/internal/platform/postgres"
	"mealog/internal/platform/redis"
)

// closerStack closes resources in reverse order of acquisition.
type closerStack []namedCloser

type namedCloser struct {
	name string
	c    io.Closer
}

func (s *closerStack) push(name string, c io.Closer) {
	*s = append(*s, namedCloser{name: name, c: c})
}

func (s closerStack) closeAll(log *slog.Logger) {
	for i := len(s) - 1; i >= 0; i-- {
		if err := s[i].c.Close(); err != nil {
			log.Warn("failed to close resource", "resource", s[i].name, "error", err)
		}
	}
}

type closeFunc func()

func (f closeFunc) Close() error {
	f()
	return nil
}

// buildBlobStore returns the backend selected by cfg.Storage.Backend.
func buildBlobStore(ctx context.Context, cfg config.Server, closers *closerStack) (blobstore.Store, error) {
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		return blobstore.NewInMemory(), nil

	case config.StorageFile:
		return blobstore.NewFile(cfg.Storage.DataDir)

	case config.StorageRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, fmt.Errorf("storage %q requires MEALOG_REDIS_URL", cfg.Storage.Backend)
		}
		closers.push("redis", client)
		return blobstore.NewRedis(client.Client,
			blobstore.WithKeyPrefix(cfg.Redis.KeyPrefix),
			blobstore.WithRedisMetrics(prometheus.DefaultRegisterer),
		), nil

	case config.StoragePostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if db == nil {
			return nil, fmt.Errorf("storage %q requires MEALOG_DATABASE_URL", cfg.Storage.Backend)
		}
		closers.push("postgres", db)
		pg := blobstore.NewPostgres(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return pg, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// buildPublisher returns a Kafka publisher when brokers are configured and a
// no-op publisher otherwise.
func buildPublisher(ctx context.Context, cfg config.KafkaConfig, closers *closerStack) (events.Publisher, error) {
	client, err := kafka.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return events.Noop{}, nil
	}
	closers.push("kafka", closeFunc(client.Close))
	if err := kafka.EnsureTopic(ctx, client, cfg.Topic); err != nil {
		return nil, err
	}
	return events.NewKafka(client, cfg.Topic), nil
}
