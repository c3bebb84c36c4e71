package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(title, url string, date time.Time) Event {
	return Event{Title: title, URL: url, Date: date, Status: StatusTicket}
}

func assertSorted(t *testing.T, events []Event) {
	t.Helper()
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Date.Before(events[i-1].Date),
			"collection must be non-decreasing by date")
	}
}

func TestNewCollection_NormalisesAndCounts(t *testing.T) {
	raw := []Event{
		testEvent("M&uuml;nchen Show", "https://x/1", time.Date(2025, 7, 1, 20, 0, 0, 0, time.UTC)),
		testEvent("Already Clean", "https://x/2", time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)),
		{
			Title:  "Stra&szlig;enfest",
			URL:    "https://x/3",
			Date:   time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC),
			Status: StatusInterest,
			City:   "K&ouml;ln",
		},
	}

	c, changed := NewCollection(raw)

	assert.Equal(t, 2, changed)
	events := c.Events()
	require.Len(t, events, 3)
	assertSorted(t, events)
	assert.Equal(t, "Straßenfest", events[0].Title)
	assert.Equal(t, "Köln", events[0].City)
	assert.Equal(t, "München Show", events[2].Title)
}

func TestNewCollection_SecondPassChangesNothing(t *testing.T) {
	raw := []Event{
		testEvent("M&uuml;nchen", "https://x/1", time.Date(2025, 7, 1, 20, 0, 0, 0, time.UTC)),
	}

	c, changed := NewCollection(raw)
	require.Equal(t, 1, changed)

	_, changed = NewCollection(c.Events())
	assert.Zero(t, changed)
}

func TestCollection_Add_SortsAscending(t *testing.T) {
	c, _ := NewCollection(nil)

	a := testEvent("A", "https://x/1", time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))
	b := testEvent("B", "https://x/2", time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC))

	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(b))

	events := c.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "B", events[0].Title)
	assert.Equal(t, "A", events[1].Title)
}

func TestCollection_Add_DuplicateURL(t *testing.T) {
	c, _ := NewCollection(nil)
	require.NoError(t, c.Add(testEvent("A", "https://x/1", time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))))

	dup := testEvent("Other Title", "https://x/1", time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC))
	err := c.Add(dup)

	assert.ErrorIs(t, err, ErrDuplicateEvent)
	assert.Equal(t, 1, c.Len())
}

func TestCollection_Add_DuplicateDate(t *testing.T) {
	date := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	c, _ := NewCollection(nil)
	require.NoError(t, c.Add(testEvent("A", "https://x/1", date)))

	err := c.Add(testEvent("B", "https://x/2", date))

	assert.ErrorIs(t, err, ErrDuplicateEvent)
}

func TestCollection_Add_EmptyURLNeverCollides(t *testing.T) {
	c, _ := NewCollection(nil)
	require.NoError(t, c.Add(testEvent("A", "", time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))))
	require.NoError(t, c.Add(testEvent("B", "", time.Date(2025, 7, 1, 20, 0, 0, 0, time.UTC))))
	assert.Equal(t, 2, c.Len())
}

func TestCollection_Add_InvalidEvent(t *testing.T) {
	c, _ := NewCollection(nil)
	err := c.Add(Event{URL: "https://x/1", Date: time.Now(), Status: StatusTicket})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, c.Len())
}

func TestCollection_Add_DecodesTextFields(t *testing.T) {
	c, _ := NewCollection(nil)
	e := testEvent("K&ouml;ln Konzert", "https://x/1", time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))
	e.Venue = "Gro&szlig;e Halle"

	require.NoError(t, c.Add(e))

	got, err := c.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Köln Konzert", got.Title)
	assert.Equal(t, "Große Halle", got.Venue)
}

func TestCollection_Edit_DateChangeReorders(t *testing.T) {
	c, _ := NewCollection(nil)
	require.NoError(t, c.Add(testEvent("First", "https://x/1", time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC))))
	require.NoError(t, c.Add(testEvent("Second", "https://x/2", time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))))

	newDate := time.Date(2025, 7, 1, 20, 0, 0, 0, time.UTC)
	updated, err := c.Edit(0, EventPatch{Date: &newDate})

	require.NoError(t, err)
	assert.Equal(t, "First", updated.Title)
	assert.True(t, updated.Date.Equal(newDate))

	events := c.Events()
	assert.Equal(t, "Second", events[0].Title)
	assert.Equal(t, "First", events[1].Title)
	assertSorted(t, events)
}

func TestCollection_Edit_PartialPatchDecodes(t *testing.T) {
	c, _ := NewCollection(nil)
	require.NoError(t, c.Add(testEvent("Old", "https://x/1", time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC))))

	title := "Neuer B&auml;r"
	city := "N&uuml;rnberg"
	updated, err := c.Edit(0, EventPatch{Title: &title, City: &city})

	require.NoError(t, err)
	assert.Equal(t, "Neuer Bär", updated.Title)
	assert.Equal(t, "Nürnberg", updated.City)
	assert.Equal(t, "https://x/1", updated.URL, "unpatched fields survive")
}

func TestCollection_Edit_OutOfRange(t *testing.T) {
	c, _ := NewCollection(nil)
	_, err := c.Edit(0, EventPatch{})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, c.Add(testEvent("A", "https://x/1", time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC))))
	_, err = c.Edit(-1, EventPatch{})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = c.Edit(1, EventPatch{})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestCollection_Edit_RejectsEmptyTitle(t *testing.T) {
	c, _ := NewCollection(nil)
	require.NoError(t, c.Add(testEvent("A", "https://x/1", time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC))))

	empty := ""
	_, err := c.Edit(0, EventPatch{Title: &empty})

	assert.ErrorIs(t, err, ErrInvalidInput)
	got, _ := c.Get(0)
	assert.Equal(t, "A", got.Title, "failed edit must not mutate")
}

func TestCollection_Remove(t *testing.T) {
	c, _ := NewCollection(nil)
	require.NoError(t, c.Add(testEvent("A", "https://x/1", time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC))))
	require.NoError(t, c.Add(testEvent("B", "https://x/2", time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))))

	removed, err := c.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, "A", removed.Title)
	assert.Equal(t, 1, c.Len())

	_, err = c.Remove(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestCollection_RemoveMatch(t *testing.T) {
	c, _ := NewCollection(nil)
	require.NoError(t, c.Add(testEvent("A", "https://x/1", time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC))))

	removed, err := c.RemoveMatch(func(e Event) bool { return e.URL == "https://x/1" })
	require.NoError(t, err)
	assert.Equal(t, "A", removed.Title)

	_, err = c.RemoveMatch(func(e Event) bool { return true })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_UpcomingPast(t *testing.T) {
	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	c, _ := NewCollection(nil)
	require.NoError(t, c.Add(testEvent("Past", "https://x/1", asOf.Add(-time.Hour))))
	require.NoError(t, c.Add(testEvent("Boundary", "https://x/2", asOf)))
	require.NoError(t, c.Add(testEvent("Future", "https://x/3", asOf.Add(time.Hour))))

	upcoming := c.Upcoming(asOf)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Boundary", upcoming[0].Title, "date == asOf counts as upcoming")
	assert.Equal(t, "Future", upcoming[1].Title)

	past := c.Past(asOf)
	require.Len(t, past, 1)
	assert.Equal(t, "Past", past[0].Title)
}

func TestCollection_SortInvariantAfterMutations(t *testing.T) {
	c, _ := NewCollection(nil)
	base := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)

	dates := []int{5, 1, 9, 3, 7}
	for i, d := range dates {
		e := testEvent(string(rune('A'+i)), "", base.AddDate(0, d, 0))
		e.URL = "https://x/" + string(rune('0'+i))
		require.NoError(t, c.Add(e))
		assertSorted(t, c.Events())
	}

	newDate := base.AddDate(0, 11, 0)
	_, err := c.Edit(0, EventPatch{Date: &newDate})
	require.NoError(t, err)
	assertSorted(t, c.Events())

	_, err = c.Remove(2)
	require.NoError(t, err)
	assertSorted(t, c.Events())
}

// Mirrors the full session scenario: empty load, two inserts out of order,
// duplicate rejection, collection unchanged afterwards.
func TestCollection_EndToEndScenario(t *testing.T) {
	c, changed := NewCollection(nil)
	require.Zero(t, changed)

	a := testEvent("A", "https://x/1", time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))
	b := testEvent("B", "https://x/2", time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC))

	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(b))

	events := c.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "B", events[0].Title)
	assert.Equal(t, "A", events[1].Title)

	again := testEvent("A again", "https://x/1", time.Date(2026, 1, 1, 20, 0, 0, 0, time.UTC))
	err := c.Add(again)
	assert.ErrorIs(t, err, ErrDuplicateEvent)

	events = c.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "B", events[0].Title)
	assert.Equal(t, "A", events[1].Title)
}
