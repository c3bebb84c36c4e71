// Package memory provides in-memory implementations of the driven
// storage ports, used by tests and as session-scoped fixtures.
package memory

import (
	"context"
	"sync"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
	"github.com/gigfolio/gigfolio-cli/internal/core/ports/driven"
)

// Ensure CollectionStore implements the interface.
var _ driven.CollectionStore = (*CollectionStore)(nil)

// CollectionStore is an in-memory implementation of driven.CollectionStore.
type CollectionStore struct {
	mu     sync.RWMutex
	events []domain.Event
	found  bool

	// SaveCount tracks Save invocations, letting tests assert the
	// persist-after-mutation contract.
	SaveCount int
}

// NewCollectionStore creates an empty in-memory store, equivalent to an
// absent persisted file.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{}
}

// Seed replaces the stored collection and marks it as present.
func (s *CollectionStore) Seed(events []domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append([]domain.Event(nil), events...)
	s.found = true
}

// Load returns the stored collection.
func (s *CollectionStore) Load(_ context.Context) ([]domain.Event, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out, s.found, nil
}

// Save replaces the stored collection.
func (s *CollectionStore) Save(_ context.Context, events []domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append([]domain.Event(nil), events...)
	s.found = true
	s.SaveCount++
	return nil
}

// Path returns a fixed marker; there is no backing file.
func (s *CollectionStore) Path() string {
	return "memory"
}
