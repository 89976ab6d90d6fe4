/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory snapshot.Store for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/mapperconfig/errors"
	"github.com/suparena/mapperconfig/snapshot"
)

// Store is a mock implementation of snapshot.Store for testing
type Store struct {
	mu        sync.RWMutex
	data      map[string]snapshot.Snapshot
	saveError error
	loadError error
}

// New creates a new mock Store
func New() *Store {
	return &Store{
		data: make(map[string]snapshot.Snapshot),
	}
}

// WithSaveError makes Save operations return an error
func (m *Store) WithSaveError(err error) *Store {
	m.saveError = err
	return m
}

// WithLoadError makes Load operations return an error
func (m *Store) WithLoadError(err error) *Store {
	m.loadError = err
	return m
}

// Save stores a copy of the snapshot
func (m *Store) Save(ctx context.Context, s *snapshot.Snapshot) error {
	if m.saveError != nil {
		return m.saveError
	}
	if s == nil {
		return errors.NewValidationError("", "snapshot is nil")
	}
	if s.ID == "" {
		return errors.NewValidationError("id", "must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[s.ID] = *s
	return nil
}

// Load retrieves a snapshot by ID
func (m *Store) Load(ctx context.Context, id string) (*snapshot.Snapshot, error) {
	if m.loadError != nil {
		return nil, m.loadError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.data[id]
	if !exists {
		return nil, errors.NewNotFoundError("Snapshot", id)
	}
	return &s, nil
}

// Count returns the number of stored snapshots
func (m *Store) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// IDs returns the IDs of the stored snapshots in no particular order
func (m *Store) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	return ids
}

// Clear removes all snapshots
func (m *Store) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]snapshot.Snapshot)
}

var _ snapshot.Store = (*Store)(nil)
