package driving

import (
	"context"
	"time"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
)

// CollectionService exposes the event collection to front ends. Every
// mutating operation leaves the in-memory collection sorted and
// normalized and persists it before returning.
type CollectionService interface {
	// Events returns all events in date order.
	Events() []domain.Event

	// Upcoming returns the events with date >= asOf.
	Upcoming(asOf time.Time) []domain.Event

	// Past returns the events with date < asOf.
	Past(asOf time.Time) []domain.Event

	// Get returns the event at index (date order, zero-based).
	Get(index int) (domain.Event, error)

	// Add validates, deduplicates, inserts and persists.
	Add(ctx context.Context, e domain.Event) error

	// Edit applies a partial update, re-sorts and persists.
	Edit(ctx context.Context, index int, patch domain.EventPatch) (domain.Event, error)

	// Remove deletes the event at index and persists.
	Remove(ctx context.Context, index int) (domain.Event, error)

	// Clear removes all events, persists, and returns how many were removed.
	Clear(ctx context.Context) (int, error)

	// Reload re-reads the collection from the backing store, re-running
	// the normalization pass.
	Reload(ctx context.Context) error
}
