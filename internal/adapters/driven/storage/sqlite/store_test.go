package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLoad_EmptyDatabase(t *testing.T) {
	store := newTestStore(t)

	events, found, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, events)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved := []domain.Event{
		{
			Title:  "Band Name",
			URL:    "https://x/1",
			Date:   time.Date(2025, 9, 20, 18, 0, 0, 0, time.UTC),
			Status: domain.StatusTicket,
			City:   "Berlin",
			Venue:  "Arena Hall",
		},
		{
			Title:  "Other Act",
			Date:   time.Date(2025, 10, 2, 19, 30, 0, 0, time.UTC),
			Status: domain.StatusInterest,
		},
	}

	require.NoError(t, store.Save(ctx, saved))

	loaded, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Band Name", loaded[0].Title)
	assert.Equal(t, "Arena Hall", loaded[0].Venue)
	assert.True(t, loaded[0].Date.Equal(saved[0].Date))
	assert.Equal(t, domain.StatusInterest, loaded[1].Status)
}

func TestSave_ReplacesPreviousContents(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := []domain.Event{
		{Title: "A", URL: "https://x/1", Date: time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC), Status: domain.StatusTicket},
		{Title: "B", URL: "https://x/2", Date: time.Date(2025, 2, 1, 20, 0, 0, 0, time.UTC), Status: domain.StatusTicket},
	}
	require.NoError(t, store.Save(ctx, first))

	second := []domain.Event{
		{Title: "C", URL: "https://x/3", Date: time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC), Status: domain.StatusInterest},
	}
	require.NoError(t, store.Save(ctx, second))

	loaded, _, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "C", loaded[0].Title)
}

func TestSaveLoad_PreservesOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	events := make([]domain.Event, 5)
	base := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	for i := range events {
		events[i] = domain.Event{
			Title:  string(rune('A' + i)),
			URL:    "https://x/" + string(rune('0'+i)),
			Date:   base.AddDate(0, i, 0),
			Status: domain.StatusTicket,
		}
	}

	require.NoError(t, store.Save(ctx, events))

	loaded, _, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 5)
	for i, e := range loaded {
		assert.Equal(t, events[i].Title, e.Title)
	}
}
