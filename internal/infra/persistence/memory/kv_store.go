// Package memory provides the in-memory KVStore used for development and
// tests, and as the fallback when Postgres is not configured.
package memory

import (
	"context"
	"sync"

	"nearby/internal/domain/repository"
)

type kvStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewKVStore creates an empty in-memory key-value store.
func NewKVStore() repository.KVStore {
	return &kvStore{
		entries: make(map[string]string),
	}
}

// Get returns the value stored under key, or repository.ErrKeyNotFound.
func (s *kvStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}

	return value, nil
}

// Set stores value under key, overwriting any previous value.
func (s *kvStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value

	return nil
}
