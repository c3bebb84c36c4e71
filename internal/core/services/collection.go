package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
	"github.com/gigfolio/gigfolio-cli/internal/core/ports/driven"
	"github.com/gigfolio/gigfolio-cli/internal/core/ports/driving"
	"github.com/gigfolio/gigfolio-cli/internal/logger"
)

// Ensure CollectionService implements the interface.
var _ driving.CollectionService = (*CollectionService)(nil)

// CollectionService owns the event collection for the session and is the
// caller that triggers persistence: the domain collection only guarantees
// in-memory consistency, this service saves through the store port after
// every successful mutation.
type CollectionService struct {
	store      driven.CollectionStore
	collection *domain.Collection
}

// OpenCollection loads the persisted collection, runs the entity-decode
// normalization pass, and re-persists immediately if normalization
// changed any record.
func OpenCollection(ctx context.Context, store driven.CollectionStore) (*CollectionService, error) {
	events, found, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading collection: %w", err)
	}
	if !found {
		logger.Debug("no collection at %s, starting empty", store.Path())
	}

	collection, changed := domain.NewCollection(events)
	s := &CollectionService{store: store, collection: collection}

	if changed > 0 {
		logger.Info("normalized %d stored records, re-persisting", changed)
		if err := store.Save(ctx, collection.Events()); err != nil {
			return nil, fmt.Errorf("persisting normalized collection: %w", err)
		}
	}
	return s, nil
}

// persist saves the current collection through the store port.
func (s *CollectionService) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, s.collection.Events()); err != nil {
		return fmt.Errorf("persisting collection: %w", err)
	}
	return nil
}

// Events returns all events in date order.
func (s *CollectionService) Events() []domain.Event {
	return s.collection.Events()
}

// Upcoming returns the events with date >= asOf.
func (s *CollectionService) Upcoming(asOf time.Time) []domain.Event {
	return s.collection.Upcoming(asOf)
}

// Past returns the events with date < asOf.
func (s *CollectionService) Past(asOf time.Time) []domain.Event {
	return s.collection.Past(asOf)
}

// Get returns the event at index.
func (s *CollectionService) Get(index int) (domain.Event, error) {
	return s.collection.Get(index)
}

// Add validates, deduplicates, inserts, and persists.
func (s *CollectionService) Add(ctx context.Context, e domain.Event) error {
	if err := s.collection.Add(e); err != nil {
		return err
	}
	logger.Debug("added event %q at %s", e.Title, e.Date.UTC().Format(time.RFC3339))
	return s.persist(ctx)
}

// Edit applies a partial update and persists.
func (s *CollectionService) Edit(ctx context.Context, index int, patch domain.EventPatch) (domain.Event, error) {
	updated, err := s.collection.Edit(index, patch)
	if err != nil {
		return domain.Event{}, err
	}
	if err := s.persist(ctx); err != nil {
		return domain.Event{}, err
	}
	return updated, nil
}

// Remove deletes the event at index and persists.
func (s *CollectionService) Remove(ctx context.Context, index int) (domain.Event, error) {
	removed, err := s.collection.Remove(index)
	if err != nil {
		return domain.Event{}, err
	}
	if err := s.persist(ctx); err != nil {
		return domain.Event{}, err
	}
	return removed, nil
}

// Clear removes all events and persists the empty collection.
func (s *CollectionService) Clear(ctx context.Context) (int, error) {
	n := s.collection.Clear()
	if n == 0 {
		return 0, nil
	}
	if err := s.persist(ctx); err != nil {
		return 0, err
	}
	return n, nil
}

// Reload re-reads the collection from the backing store. Used when the
// backing file changed underneath a long-running view.
func (s *CollectionService) Reload(ctx context.Context) error {
	events, _, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("reloading collection: %w", err)
	}
	s.collection, _ = domain.NewCollection(events)
	return nil
}
