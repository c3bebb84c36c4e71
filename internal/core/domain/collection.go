package domain

import (
	"sort"
	"time"
)

// Collection owns the in-memory event list for the lifetime of a session.
// Every mutating operation validates fully before committing, then leaves
// the list sorted ascending by date with all text fields entity-decoded.
// Lookups are linear scans; the collection holds at most a few hundred
// records.
//
// Collection never persists itself. Callers trigger persistence through a
// driven port after each successful mutation.
type Collection struct {
	events []Event
}

// NewCollection builds a collection from persisted records, applying the
// entity-decode pass to title, venue and city and sorting by date. The
// returned count is the number of records the decode pass actually
// changed; callers use it to decide whether to re-persist immediately.
func NewCollection(events []Event) (*Collection, int) {
	changed := 0
	normalized := make([]Event, len(events))
	for i, e := range events {
		n := normalizeEvent(e)
		if n.Title != e.Title || n.Venue != e.Venue || n.City != e.City {
			changed++
		}
		normalized[i] = n
	}
	c := &Collection{events: normalized}
	c.sort()
	return c, changed
}

func normalizeEvent(e Event) Event {
	e.Title = DecodeEntities(e.Title)
	e.Venue = DecodeEntities(e.Venue)
	e.City = DecodeEntities(e.City)
	return e
}

func (c *Collection) sort() {
	sort.SliceStable(c.events, func(i, j int) bool {
		return c.events[i].Date.Before(c.events[j].Date)
	})
}

// Len returns the number of events.
func (c *Collection) Len() int {
	return len(c.events)
}

// Events returns a copy of the collection in date order.
func (c *Collection) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Get returns the event at index.
func (c *Collection) Get(index int) (Event, error) {
	if index < 0 || index >= len(c.events) {
		return Event{}, ErrIndexOutOfRange
	}
	return c.events[index], nil
}

// findDuplicate reports whether an existing event matches the dedup key:
// exact date equality, or equal non-empty URL.
func (c *Collection) findDuplicate(e Event) bool {
	for i := range c.events {
		if c.events[i].Date.Equal(e.Date) {
			return true
		}
		if e.URL != "" && c.events[i].URL == e.URL {
			return true
		}
	}
	return false
}

// Add validates the event, rejects duplicates, then inserts and re-sorts.
// Returns ErrDuplicateEvent when an existing record matches the date
// exactly or shares the same non-empty URL.
func (c *Collection) Add(e Event) error {
	e = normalizeEvent(e)
	if err := e.Validate(); err != nil {
		return err
	}
	if c.findDuplicate(e) {
		return ErrDuplicateEvent
	}
	c.events = append(c.events, e)
	c.sort()
	return nil
}

// Edit applies a partial update to the event at index. Changed text
// fields are entity-decoded; a date change re-sorts the collection.
// Returns the updated record.
func (c *Collection) Edit(index int, patch EventPatch) (Event, error) {
	if index < 0 || index >= len(c.events) {
		return Event{}, ErrIndexOutOfRange
	}

	updated := c.events[index]
	if patch.Title != nil {
		updated.Title = DecodeEntities(*patch.Title)
	}
	if patch.Venue != nil {
		updated.Venue = DecodeEntities(*patch.Venue)
	}
	if patch.City != nil {
		updated.City = DecodeEntities(*patch.City)
	}
	if patch.Date != nil {
		updated.Date = *patch.Date
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if err := updated.Validate(); err != nil {
		return Event{}, err
	}

	c.events[index] = updated
	c.sort()
	return updated, nil
}

// Remove deletes the event at index and returns it.
func (c *Collection) Remove(index int) (Event, error) {
	if index < 0 || index >= len(c.events) {
		return Event{}, ErrIndexOutOfRange
	}
	removed := c.events[index]
	c.events = append(c.events[:index], c.events[index+1:]...)
	return removed, nil
}

// RemoveMatch deletes the first event matching the predicate and returns
// it. Returns ErrNotFound when nothing matches; it never removes more
// than one record.
func (c *Collection) RemoveMatch(match func(Event) bool) (Event, error) {
	for i := range c.events {
		if match(c.events[i]) {
			return c.Remove(i)
		}
	}
	return Event{}, ErrNotFound
}

// Clear removes all events and returns how many were removed.
func (c *Collection) Clear() int {
	n := len(c.events)
	c.events = nil
	return n
}

// Upcoming returns the events with date >= asOf, preserving sort order.
func (c *Collection) Upcoming(asOf time.Time) []Event {
	var out []Event
	for _, e := range c.events {
		if !e.Date.Before(asOf) {
			out = append(out, e)
		}
	}
	return out
}

// Past returns the events with date < asOf, preserving sort order.
func (c *Collection) Past(asOf time.Time) []Event {
	var out []Event
	for _, e := range c.events {
		if e.Date.Before(asOf) {
			out = append(out, e)
		}
	}
	return out
}
