package blobstore

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"mealog/pkg/platform/sentinel"
)

// Redis stores blobs as plain string values under prefix+key.
type Redis struct {
	client      *redis.Client
	prefix      string
	getDuration prometheus.Histogram
}

// RedisOption configures a Redis blob store.
type RedisOption func(*Redis)

// WithKeyPrefix namespaces every key, e.g. "mealog:".
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *Redis) {
		s.prefix = prefix
	}
}

// WithRedisMetrics registers the read latency histogram with reg.
func WithRedisMetrics(reg prometheus.Registerer) RedisOption {
	return func(s *Redis) {
		s.getDuration = promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "mealog_blob_redis_get_duration_ms",
			Help:    "Latency of Redis blob reads in milliseconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
		})
	}
}

// NewRedis constructs a Redis-backed blob store. The client lifecycle is
// managed by the caller.
func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	s := &Redis{client: client}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Redis) Get(ctx context.Context, key string) (string, error) {
	if s.getDuration != nil {
		start := time.Now()
		defer func() {
			s.getDuration.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
		}()
	}

	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, classifyRedis(err))
	}
	return v, nil
}

func (s *Redis) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, classifyRedis(err))
	}
	return nil
}

// classifyRedis marks connection failures and a closed client as
// sentinel.ErrUnavailable.
func classifyRedis(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, redis.ErrClosed) {
		return errors.Join(sentinel.ErrUnavailable, err)
	}
	return err
}
