package driven

import (
	"context"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
)

// CollectionStore persists the event collection as a whole. The collection
// is small (a few hundred records at most), so the contract is load-all /
// save-all rather than per-record operations.
type CollectionStore interface {
	// Load reads the persisted collection. A missing backing file is not
	// an error: it returns an empty slice and found == false, which is
	// equivalent to an empty collection.
	Load(ctx context.Context) (events []domain.Event, found bool, err error)

	// Save writes the full collection, replacing the previous contents.
	// Dates are persisted as ISO-8601 UTC instants.
	Save(ctx context.Context, events []domain.Event) error

	// Path returns the backing location, for display.
	Path() string
}
