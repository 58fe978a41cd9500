// Package store owns the persisted layout of the meal record collection: one
// JSON array under a fixed key, plus a schema version under a sibling key.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"mealog/internal/blobstore"
	"mealog/internal/meals/models"
	"mealog/pkg/platform/sentinel"
)

const (
	// RecordsKey holds the whole collection as a JSON array.
	RecordsKey = "meal_records"
	// SchemaVersionKey holds the layout version of RecordsKey as a decimal string.
	// A missing version key means version 1.
	SchemaVersionKey = RecordsKey + ":schema_version"
	// CurrentSchemaVersion is the layout this build reads and writes.
	CurrentSchemaVersion = 1
)

// ErrUnsupportedSchema is returned when the stored layout is newer than this
// build or no migration path exists.
var ErrUnsupportedSchema = errors.New("unsupported schema version")

// Migration rewrites a raw collection from version N to N+1.
type Migration func(raw []byte) ([]byte, error)

// Store reads and writes the collection through a blob store.
type Store struct {
	blobs      blobstore.Store
	current    int
	migrations map[int]Migration

	mu            sync.Mutex
	storedVersion int
}

// Option configures a Store.
type Option func(*Store)

// WithMigration registers the step that upgrades version from to from+1.
func WithMigration(from int, m Migration) Option {
	return func(s *Store) {
		s.migrations[from] = m
	}
}

// WithSchemaVersion overrides the version this Store writes. Used when a new
// layout ships together with its migration.
func WithSchemaVersion(v int) Option {
	return func(s *Store) {
		s.current = v
	}
}

func New(blobs blobstore.Store, opts ...Option) *Store {
	s := &Store{
		blobs:      blobs,
		current:    CurrentSchemaVersion,
		migrations: make(map[int]Migration),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the persisted collection. It returns sentinel.ErrNotFound when
// nothing was ever saved or the stored value is empty, and an error wrapping sentinel.ErrCorrupt when the
// stored value cannot be decoded.
func (s *Store) Load(ctx context.Context) ([]*models.MealRecord, error) {
	raw, err := s.blobs.Get(ctx, RecordsKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", RecordsKey, err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("load %s: empty value: %w", RecordsKey, sentinel.ErrNotFound)
	}

	version, err := s.loadVersion(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.migrate([]byte(raw), version)
	if err != nil {
		return nil, err
	}

	var records []*models.MealRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", RecordsKey, sentinel.ErrCorrupt, err)
	}

	out := make([]*models.MealRecord, 0, len(records))
	for _, r := range records {
		if r != nil {
			out = append(out, r)
		}
	}

	s.mu.Lock()
	s.storedVersion = version
	s.mu.Unlock()
	return out, nil
}

// Save writes the whole collection, then the schema version if it changed.
func (s *Store) Save(ctx context.Context, records []*models.MealRecord) error {
	if records == nil {
		records = []*models.MealRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", RecordsKey, err)
	}
	if err := s.blobs.Set(ctx, RecordsKey, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", RecordsKey, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.storedVersion == s.current {
		return nil
	}
	if err := s.blobs.Set(ctx, SchemaVersionKey, strconv.Itoa(s.current)); err != nil {
		return fmt.Errorf("save %s: %w", SchemaVersionKey, err)
	}
	s.storedVersion = s.current
	return nil
}

func (s *Store) loadVersion(ctx context.Context) (int, error) {
	raw, err := s.blobs.Get(ctx, SchemaVersionKey)
	if errors.Is(err, sentinel.ErrNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", SchemaVersionKey, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return 0, fmt.Errorf("parse %s %q: %w", SchemaVersionKey, raw, sentinel.ErrCorrupt)
	}
	return v, nil
}

func (s *Store) migrate(data []byte, version int) ([]byte, error) {
	if version > s.current {
		return nil, fmt.Errorf("stored version %d, supported %d: %w", version, s.current, ErrUnsupportedSchema)
	}
	for v := version; v < s.current; v++ {
		m, ok := s.migrations[v]
		if !ok {
			return nil, fmt.Errorf("no migration from version %d: %w", v, ErrUnsupportedSchema)
		}
		var err error
		data, err = m(data)
		if err != nil {
			return nil, fmt.Errorf("migrate from version %d: %w", v, err)
		}
	}
	return data, nil
}
