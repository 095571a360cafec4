// Package storage provides reference document stores for the resolver
// library: an in-memory store, a SQLite-backed store, and an expiring
// read-through cache. The Resolver adapter exposes any of them as a
// DID/VC resolver pair.
package storage

import (
	"context"
	"fmt"
	"sync"
)

// KV is a minimal key-value document store. Implementations must be safe
// for concurrent use.
type KV interface {
	// Get fetches the value for key. Returns an error if no entry exists.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the value for key, overwriting any previous entry.
	Set(ctx context.Context, key, value string) error
}

// Store is an in-memory KV implementation.
// Suitable for testing and single-instance deployments.
type Store struct {
	mu      sync.RWMutex
	entries map[string]string
}

// Compile-time interface check.
var _ KV = (*Store)(nil)

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]string),
	}
}

// Get fetches the value for key.
func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return "", fmt.Errorf("no entry for %q", key)
	}
	return value, nil
}

// Set stores the value for key.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
	return nil
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
