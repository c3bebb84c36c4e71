package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested event does not exist.
	ErrNotFound = errors.New("event not found")

	// ErrDuplicateEvent indicates an insert was rejected because an
	// equivalent event already exists (same non-empty URL, or same instant).
	ErrDuplicateEvent = errors.New("event already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexOutOfRange indicates an edit or remove target vanished.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidDate indicates a well-formed but non-existent calendar
	// date, such as day 31 in a 30-day month. Never silently clamped.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrFetchFailed indicates the source page could not be retrieved.
	// Extraction is aborted; no partial event is created.
	ErrFetchFailed = errors.New("page fetch failed")

	// ErrCancelled indicates the user abandoned an interactive flow.
	// No store mutation has happened when this is returned.
	ErrCancelled = errors.New("cancelled")
)

// Parts of a typed date/time input, named by FormatError.
const (
	FormatPartDate = "date"
	FormatPartTime = "time"
)

// FormatError reports that a user-typed date or time failed the strict
// wire format (DD.MM.YYYY respectively HH:MM). Callers re-prompt; they
// must not auto-correct the input.
type FormatError struct {
	// Part is FormatPartDate or FormatPartTime.
	Part string

	// Input is the rejected raw text.
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s format: %q", e.Part, e.Input)
}
