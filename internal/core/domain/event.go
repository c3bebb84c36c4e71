package domain

import (
	"strings"
	"time"
)

// Status records how the user relates to an event.
type Status string

const (
	// StatusTicket means a ticket has been bought.
	StatusTicket Status = "ticket"

	// StatusInterest means the event is watched but no ticket is held.
	StatusInterest Status = "interest"
)

// legacyInterest is the status value written by early collection files.
const legacyInterest = "interesse"

// ParseStatus converts a persisted status string to a Status.
// The legacy spelling "interesse" is accepted and mapped to StatusInterest.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusTicket:
		return StatusTicket, true
	case StatusInterest:
		return StatusInterest, true
	}
	if s == legacyInterest {
		return StatusInterest, true
	}
	return "", false
}

// IsValid reports whether the status is one of the known values.
func (s Status) IsValid() bool {
	return s == StatusTicket || s == StatusInterest
}

// Icon returns the marker shown next to an event in lists and the widget.
func (s Status) Icon() string {
	if s == StatusTicket {
		return "✅"
	}
	return "⭐️"
}

// Event represents a single calendar entry for a ticketed or watched occasion.
// It is the sole persisted entity; the collection of events is the entire
// durable state of the application.
type Event struct {
	// Title is the display text, HTML-entity-decoded, never empty.
	Title string

	// URL is the source link. May be empty for manually entered events.
	// A non-empty URL is part of the duplicate-detection key.
	URL string

	// Date is the absolute instant of the event, minute precision.
	// Persisted as an ISO-8601 UTC string.
	Date time.Time

	// Status is the user-assigned relation to the event.
	Status Status

	// City is the event city, decoded free text. May be empty.
	City string

	// Venue is the event venue, decoded free text. May be empty.
	Venue string
}

// Location joins venue and city with the given separator, skipping empty
// parts. Used for list subtitles and calendar export.
func (e *Event) Location(sep string) string {
	parts := make([]string, 0, 2)
	if e.Venue != "" {
		parts = append(parts, e.Venue)
	}
	if e.City != "" {
		parts = append(parts, e.City)
	}
	return strings.Join(parts, sep)
}

// Validate checks the event invariants that must hold before an insert.
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrInvalidInput
	}
	if e.Date.IsZero() {
		return ErrInvalidInput
	}
	if !e.Status.IsValid() {
		return ErrInvalidInput
	}
	return nil
}

// EventPatch is a partial update applied to an existing event.
// Nil fields are left unchanged.
type EventPatch struct {
	Title  *string
	Date   *time.Time
	Status *Status
	City   *string
	Venue  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p *EventPatch) IsEmpty() bool {
	return p.Title == nil && p.Date == nil && p.Status == nil &&
		p.City == nil && p.Venue == nil
}
