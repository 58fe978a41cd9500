package blobstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealog/pkg/platform/sentinel"
)

// unreachableRedis points at a port nothing listens on.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisOutageIsUnavailable(t *testing.T) {
	reg := prometheus.NewRegistry()
	store := NewRedis(unreachableRedis(t), WithKeyPrefix("mealog:"), WithRedisMetrics(reg))
	ctx := context.Background()

	_, err := store.Get(ctx, "meal_records")
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	assert.NotErrorIs(t, err, sentinel.ErrNotFound)

	err = store.Set(ctx, "meal_records", "[]")
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)

	assert.Equal(t, 1, promtest.CollectAndCount(reg, "mealog_blob_redis_get_duration_ms"))
}

func TestRedisMetricsPerRegistry(t *testing.T) {
	client := unreachableRedis(t)
	assert.NotPanics(t, func() {
		NewRedis(client, WithRedisMetrics(prometheus.NewRegistry()))
		NewRedis(client, WithRedisMetrics(prometheus.NewRegistry()))
		NewRedis(client)
	})
}

func TestClassifyRedis(t *testing.T) {
	assert.ErrorIs(t, classifyRedis(redis.ErrClosed), sentinel.ErrUnavailable)

	other := errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")
	got := classifyRedis(other)
	assert.Same(t, other, got)
	assert.NotErrorIs(t, got, sentinel.ErrUnavailable)
}
