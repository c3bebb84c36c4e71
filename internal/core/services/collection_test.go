package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigfolio/gigfolio-cli/internal/adapters/driven/storage/memory"
	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
)

func testEvent(title, url string, date time.Time) domain.Event {
	return domain.Event{Title: title, URL: url, Date: date, Status: domain.StatusTicket}
}

func TestOpenCollection_Empty(t *testing.T) {
	store := memory.NewCollectionStore()

	service, err := OpenCollection(context.Background(), store)

	require.NoError(t, err)
	assert.Empty(t, service.Events())
	assert.Zero(t, store.SaveCount, "nothing to normalize, nothing to persist")
}

func TestOpenCollection_NormalizationTriggersPersist(t *testing.T) {
	store := memory.NewCollectionStore()
	store.Seed([]domain.Event{
		testEvent("M&uuml;nchen Show", "https://x/1", time.Date(2025, 7, 1, 20, 0, 0, 0, time.UTC)),
	})

	service, err := OpenCollection(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, 1, store.SaveCount, "normalization change must re-persist immediately")
	assert.Equal(t, "München Show", service.Events()[0].Title)

	persisted, _, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "München Show", persisted[0].Title)
}

func TestOpenCollection_CleanLoadDoesNotPersist(t *testing.T) {
	store := memory.NewCollectionStore()
	store.Seed([]domain.Event{
		testEvent("Clean", "https://x/1", time.Date(2025, 7, 1, 20, 0, 0, 0, time.UTC)),
	})

	_, err := OpenCollection(context.Background(), store)

	require.NoError(t, err)
	assert.Zero(t, store.SaveCount)
}

func TestCollectionService_AddPersists(t *testing.T) {
	store := memory.NewCollectionStore()
	service, err := OpenCollection(context.Background(), store)
	require.NoError(t, err)

	e := testEvent("A", "https://x/1", time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))
	require.NoError(t, service.Add(context.Background(), e))

	assert.Equal(t, 1, store.SaveCount)
	persisted, found, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, persisted, 1)
	assert.Equal(t, "A", persisted[0].Title)
}

func TestCollectionService_DuplicateDoesNotPersist(t *testing.T) {
	store := memory.NewCollectionStore()
	service, err := OpenCollection(context.Background(), store)
	require.NoError(t, err)

	e := testEvent("A", "https://x/1", time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))
	require.NoError(t, service.Add(context.Background(), e))
	saves := store.SaveCount

	dup := testEvent("B", "https://x/1", time.Date(2026, 1, 1, 20, 0, 0, 0, time.UTC))
	err = service.Add(context.Background(), dup)

	assert.ErrorIs(t, err, domain.ErrDuplicateEvent)
	assert.Equal(t, saves, store.SaveCount, "rejected insert must not persist")
}

func TestCollectionService_EditPersistsAndReorders(t *testing.T) {
	store := memory.NewCollectionStore()
	service, err := OpenCollection(context.Background(), store)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, service.Add(ctx, testEvent("First", "https://x/1", time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC))))
	require.NoError(t, service.Add(ctx, testEvent("Second", "https://x/2", time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))))

	newDate := time.Date(2025, 7, 1, 20, 0, 0, 0, time.UTC)
	updated, err := service.Edit(ctx, 0, domain.EventPatch{Date: &newDate})
	require.NoError(t, err)
	assert.Equal(t, "First", updated.Title)

	persisted, _, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 2)
	assert.Equal(t, "Second", persisted[0].Title)
	assert.Equal(t, "First", persisted[1].Title)
}

func TestCollectionService_RemoveAndClear(t *testing.T) {
	store := memory.NewCollectionStore()
	service, err := OpenCollection(context.Background(), store)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, service.Add(ctx, testEvent("A", "https://x/1", time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC))))
	require.NoError(t, service.Add(ctx, testEvent("B", "https://x/2", time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))))

	removed, err := service.Remove(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "A", removed.Title)

	_, err = service.Remove(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	n, err := service.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, service.Events())

	persisted, _, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestCollectionService_Reload(t *testing.T) {
	store := memory.NewCollectionStore()
	service, err := OpenCollection(context.Background(), store)
	require.NoError(t, err)

	// Simulate an external writer replacing the backing collection.
	store.Seed([]domain.Event{
		testEvent("External", "https://x/9", time.Date(2025, 8, 1, 20, 0, 0, 0, time.UTC)),
	})

	require.NoError(t, service.Reload(context.Background()))
	events := service.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "External", events[0].Title)
}

func TestCollectionService_UpcomingPast(t *testing.T) {
	store := memory.NewCollectionStore()
	service, err := OpenCollection(context.Background(), store)
	require.NoError(t, err)

	ctx := context.Background()
	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, service.Add(ctx, testEvent("Past", "https://x/1", asOf.Add(-time.Hour))))
	require.NoError(t, service.Add(ctx, testEvent("Future", "https://x/2", asOf.Add(time.Hour))))

	assert.Len(t, service.Upcoming(asOf), 1)
	assert.Len(t, service.Past(asOf), 1)
}
