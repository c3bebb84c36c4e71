package cli

import (
	"context"
	"time"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
)

// stubCollection is a canned CollectionService for command tests.
type stubCollection struct {
	events     []domain.Event
	removed    []domain.Event
	cleared    int
	editCalled bool
}

func (s *stubCollection) Events() []domain.Event {
	return s.events
}

func (s *stubCollection) Upcoming(asOf time.Time) []domain.Event {
	var out []domain.Event
	for _, e := range s.events {
		if !e.Date.Before(asOf) {
			out = append(out, e)
		}
	}
	return out
}

func (s *stubCollection) Past(asOf time.Time) []domain.Event {
	var out []domain.Event
	for _, e := range s.events {
		if e.Date.Before(asOf) {
			out = append(out, e)
		}
	}
	return out
}

func (s *stubCollection) Get(index int) (domain.Event, error) {
	if index < 0 || index >= len(s.events) {
		return domain.Event{}, domain.ErrIndexOutOfRange
	}
	return s.events[index], nil
}

func (s *stubCollection) Add(_ context.Context, e domain.Event) error {
	s.events = append(s.events, e)
	return nil
}

func (s *stubCollection) Edit(_ context.Context, index int, patch domain.EventPatch) (domain.Event, error) {
	s.editCalled = true
	if index < 0 || index >= len(s.events) {
		return domain.Event{}, domain.ErrIndexOutOfRange
	}
	e := s.events[index]
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	s.events[index] = e
	return e, nil
}

func (s *stubCollection) Remove(_ context.Context, index int) (domain.Event, error) {
	if index < 0 || index >= len(s.events) {
		return domain.Event{}, domain.ErrIndexOutOfRange
	}
	removed := s.events[index]
	s.events = append(s.events[:index], s.events[index+1:]...)
	s.removed = append(s.removed, removed)
	return removed, nil
}

func (s *stubCollection) Clear(_ context.Context) (int, error) {
	n := len(s.events)
	s.events = nil
	s.cleared = n
	return n, nil
}

func (s *stubCollection) Reload(_ context.Context) error {
	return nil
}

// stubCapture returns a fixed result for the capture flow.
type stubCapture struct {
	event  *domain.Event
	err    error
	gotURL string
}

func (s *stubCapture) Capture(_ context.Context) (*domain.Event, error) {
	return s.event, s.err
}

func (s *stubCapture) CaptureFromURL(_ context.Context, url, _ string) (*domain.Event, error) {
	s.gotURL = url
	return s.event, s.err
}

// stubPrompter answers Confirm with a fixed decision.
type stubPrompter struct {
	confirm bool
	notices []string
}

func (s *stubPrompter) Input(_ context.Context, _, _, initial string) (string, bool, error) {
	return initial, true, nil
}

func (s *stubPrompter) Choose(_ context.Context, _ string, _ []string) (int, bool, error) {
	return 0, true, nil
}

func (s *stubPrompter) Confirm(_ context.Context, _, _ string) (bool, error) {
	return s.confirm, nil
}

func (s *stubPrompter) Notify(_ context.Context, message string) error {
	s.notices = append(s.notices, message)
	return nil
}

// stubWriter records exported events.
type stubWriter struct {
	written []domain.Event
}

func (s *stubWriter) WriteEvent(_ context.Context, e domain.Event) (string, error) {
	s.written = append(s.written, e)
	return "/tmp/" + e.Title + ".ics", nil
}

func fixtureEvents(now time.Time) []domain.Event {
	// Stored dates have minute precision; the edit flow round-trips
	// through DD.MM.YYYY / HH:MM strings.
	now = now.UTC().Truncate(time.Minute)
	return []domain.Event{
		{
			Title:  "Past Show",
			Date:   now.AddDate(0, -1, 0),
			Status: domain.StatusTicket,
			City:   "Hamburg",
		},
		{
			Title:  "Band Name",
			URL:    "https://www.eventim.de/event/band-name-123/",
			Date:   now.AddDate(0, 0, 7),
			Status: domain.StatusTicket,
			City:   "Berlin",
			Venue:  "Arena Hall",
		},
		{
			Title:  "Open Air",
			Date:   now.AddDate(0, 2, 0),
			Status: domain.StatusInterest,
			City:   "München",
		},
	}
}
