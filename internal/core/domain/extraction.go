package domain

import (
	"fmt"
	"time"
)

// CivilDateTime is a calendar date and wall-clock time without an attached
// timezone, as written on a page or typed by a user. It carries calendar
// semantics only; it becomes an absolute instant when resolved against a
// venue timezone.
type CivilDateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// In resolves the civil value to an absolute instant in the given zone.
// Callers must have validated the value first; time.Date normalises
// out-of-range components instead of failing.
func (c CivilDateTime) In(loc *time.Location) time.Time {
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, 0, 0, loc)
}

// DateString renders the date part in the DD.MM.YYYY wire format.
func (c CivilDateTime) DateString() string {
	return fmt.Sprintf("%02d.%02d.%04d", c.Day, c.Month, c.Year)
}

// TimeString renders the time part in the HH:MM wire format.
func (c CivilDateTime) TimeString() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ExtractedPage is the partial record produced by the extraction pipeline.
// Any of its fields may be absent; the capture flow fills the gaps from
// user input.
type ExtractedPage struct {
	// Title is the extracted event title, entity-decoded. Falls back to
	// the clipboard hint or a placeholder, so it is never empty.
	Title string

	// Venue and City come from the structured og:title tag when present,
	// otherwise they are empty.
	Venue string
	City  string

	// CandidateDate is the civil date/time inferred from page content,
	// pending user confirmation. Nil when no date marker was found.
	CandidateDate *CivilDateTime
}
