// Package blobstore implements the key→string contract the record store
// persists through. Every backend returns sentinel.ErrNotFound for an absent
// key so callers can tell "never written" apart from a failed read.
package blobstore

import "context"

// Store is a minimal key-value blob store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
