// Package ics writes captured events as iCalendar files so they can be
// imported into any calendar application.
package ics

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
	"github.com/gigfolio/gigfolio-cli/internal/core/ports/driven"
	"github.com/gigfolio/gigfolio-cli/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.CalendarWriter = (*Writer)(nil)

const defaultEventHours = 2

// Writer serializes single events as .ics files under an output
// directory.
type Writer struct {
	outputDir  string
	eventHours int
}

// NewWriter creates a calendar writer. If outputDir is empty the
// current working directory is used. eventHours below 1 falls back to
// the default duration.
func NewWriter(outputDir string, eventHours int) *Writer {
	if eventHours < 1 {
		eventHours = defaultEventHours
	}
	return &Writer{outputDir: outputDir, eventHours: eventHours}
}

// WriteEvent writes a calendar file containing a single VEVENT for the
// given event and returns the path of the written file.
func (w *Writer) WriteEvent(_ context.Context, event domain.Event) (string, error) {
	if err := event.Validate(); err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//gigfolio//gigfolio-cli//DE")

	ve := cal.AddEvent(eventUID(event))
	ve.SetCreatedTime(time.Now().UTC())
	ve.SetDtStampTime(time.Now().UTC())
	ve.SetStartAt(event.Date.UTC())
	ve.SetEndAt(event.Date.UTC().Add(time.Duration(w.eventHours) * time.Hour))
	ve.SetSummary(event.Title)
	if loc := event.Location(", "); loc != "" {
		ve.SetLocation(loc)
	}
	if event.URL != "" {
		ve.SetURL(event.URL)
	}

	dir := w.outputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating calendar directory: %w", err)
	}

	path := filepath.Join(dir, fileName(event))
	if err := os.WriteFile(path, []byte(cal.Serialize()), 0o600); err != nil {
		return "", fmt.Errorf("writing calendar file: %w", err)
	}

	logger.Debug("wrote calendar file %s", path)
	return path, nil
}

// eventUID derives a stable identifier from the event date and title so
// re-exporting the same event updates instead of duplicating it.
func eventUID(event domain.Event) string {
	return fmt.Sprintf("%s-%s@gigfolio", event.Date.UTC().Format("20060102T150405Z"), slugify(event.Title))
}

func fileName(event domain.Event) string {
	return fmt.Sprintf("%s-%s.ics", event.Date.UTC().Format("2006-01-02"), slugify(event.Title))
}

// slugify reduces a title to a lowercase ASCII identifier fragment.
func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "event"
	}
	return slug
}
