package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type FileSuite struct {
	contractSuite
}

func TestFileSuite(t *testing.T) {
	s := new(FileSuite)
	s.newStore = func() Store {
		store, err := NewFile(t.TempDir())
		require.NoError(t, err)
		return store
	}
	suite.Run(t, s)
}

func TestFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFile(filepath.Join(dir, "nested", "data"))
	require.NoError(t, err)

	ctx := context.Background()
	for range 3 {
		require.NoError(t, store.Set(ctx, "meal_records", "[]"))
	}

	entries, err := os.ReadDir(filepath.Join(dir, "nested", "data"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "meal_records.json", entries[0].Name())
}

func TestFileEscapesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFile(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "../escape", "x"))

	_, err = os.Stat(filepath.Join(dir, "..%2Fescape.json"))
	assert.NoError(t, err)
}

func TestFileHonoursCancelledContext(t *testing.T) {
	store, err := NewFile(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Set(ctx, "k", "v"), context.Canceled)
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileSetFailsWhenDirectoryIsGone(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(dir))

	assert.Error(t, store.Set(context.Background(), "meal_records", "[]"))
}

func TestSyncDir(t *testing.T) {
	assert.NoError(t, syncDir(t.TempDir()))
	assert.Error(t, syncDir(filepath.Join(t.TempDir(), "missing")))
}
