package blobstore

import (
	"context"
	"sync"

	"mealog/pkg/platform/sentinel"
)

// InMemory keeps blobs in a map. Nothing survives a restart.
type InMemory struct {
	mu    sync.RWMutex
	blobs map[string]string
}

func NewInMemory() *InMemory {
	return &InMemory{blobs: make(map[string]string)}
}

func (s *InMemory) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.blobs[key]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return v, nil
}

func (s *InMemory) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = value
	return nil
}
