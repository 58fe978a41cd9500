package blobstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"mealog/pkg/platform/sentinel"
)

const createBlobTable = `
	CREATE TABLE IF NOT EXISTS meal_blobs (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)
`

// Postgres persists blobs in the meal_blobs table.
type Postgres struct {
	db    *sql.DB
	clock func() time.Time
}

// PostgresOption configures a Postgres blob store.
type PostgresOption func(*Postgres)

// WithPostgresClock sets the clock used for updated_at.
func WithPostgresClock(clock func() time.Time) PostgresOption {
	return func(s *Postgres) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewPostgres constructs a PostgreSQL-backed blob store.
func NewPostgres(db *sql.DB, opts ...PostgresOption) *Postgres {
	s := &Postgres{db: db, clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// EnsureSchema creates the blob table when it does not exist yet.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createBlobTable); err != nil {
		return fmt.Errorf("create meal_blobs: %w", err)
	}
	return nil
}

func (s *Postgres) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meal_blobs WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select blob %s: %w", key, classify(err))
	}
	return value, nil
}

func (s *Postgres) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO meal_blobs (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, key, value, s.clock()); err != nil {
		return fmt.Errorf("upsert blob %s: %w", key, classify(err))
	}
	return nil
}

// classify marks connection-class failures as sentinel.ErrUnavailable.
func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "08" {
		return errors.Join(sentinel.ErrUnavailable, err)
	}
	if errors.Is(err, sql.ErrConnDone) {
		return errors.Join(sentinel.ErrUnavailable, err)
	}
	return err
}
