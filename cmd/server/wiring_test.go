package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealog/internal/blobstore"
	"mealog/internal/meals/events"
	"mealog/internal/platform/config"
	"mealog/internal/platform/logger"
)

func TestBuildBlobStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		var closers closerStack
		s, err := buildBlobStore(ctx, config.Server{Storage: config.StorageConfig{Backend: config.StorageMemory}}, &closers)
		require.NoError(t, err)
		assert.IsType(t, &blobstore.InMemory{}, s)
	})

	t.Run("file", func(t *testing.T) {
		var closers closerStack
		s, err := buildBlobStore(ctx, config.Server{Storage: config.StorageConfig{Backend: config.StorageFile, DataDir: t.TempDir()}}, &closers)
		require.NoError(t, err)
		assert.IsType(t, &blobstore.File{}, s)
	})

	for _, backend := range []config.StorageBackend{config.StorageRedis, config.StoragePostgres, "s3"} {
		t.Run("misconfigured "+string(backend), func(t *testing.T) {
			var closers closerStack
			_, err := buildBlobStore(ctx, config.Server{Storage: config.StorageConfig{Backend: backend}}, &closers)
			require.Error(t, err)
			assert.Empty(t, closers)
		})
	}
}

func TestBuildPublisherWithoutBrokers(t *testing.T) {
	var closers closerStack
	p, err := buildPublisher(context.Background(), config.KafkaConfig{}, &closers)
	require.NoError(t, err)
	assert.Equal(t, events.Noop{}, p)
	closers.closeAll(logger.Discard())
}
