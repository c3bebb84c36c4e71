// Package file persists the event collection as a JSON document, the
// canonical interchange form: an ordered list of records with the date
// serialized as an ISO-8601 UTC instant.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
	"github.com/gigfolio/gigfolio-cli/internal/core/ports/driven"
)

// Ensure CollectionStore implements the interface.
var _ driven.CollectionStore = (*CollectionStore)(nil)

// record is the persisted shape of a single event.
type record struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Date   string `json:"date"`
	Status string `json:"status"`
	City   string `json:"city"`
	Venue  string `json:"venue"`
}

// CollectionStore is a JSON-file implementation of driven.CollectionStore.
type CollectionStore struct {
	filePath string
}

// NewCollectionStore creates a store backed by dataDir/events.json.
// If dataDir is empty, defaults to ~/.gigfolio.
func NewCollectionStore(dataDir string) (*CollectionStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".gigfolio")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &CollectionStore{filePath: filepath.Join(dataDir, "events.json")}, nil
}

// Path returns the backing file path.
func (s *CollectionStore) Path() string {
	return s.filePath
}

// Load reads the persisted collection. A missing file is an empty
// collection, not an error.
func (s *CollectionStore) Load(_ context.Context) ([]domain.Event, bool, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", s.filePath, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, false, fmt.Errorf("parsing %s: %w", s.filePath, err)
	}

	events := make([]domain.Event, 0, len(records))
	for i, r := range records {
		e, err := r.toEvent()
		if err != nil {
			return nil, false, fmt.Errorf("record %d in %s: %w", i, s.filePath, err)
		}
		events = append(events, e)
	}
	return events, true, nil
}

// Save writes the full collection atomically: temp file in the same
// directory, then rename over the target.
func (s *CollectionStore) Save(_ context.Context, events []domain.Event) error {
	records := make([]record, len(events))
	for i, e := range events {
		records[i] = toRecord(e)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding collection: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.filePath), ".events-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing collection: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", s.filePath, err)
	}
	return nil
}

func toRecord(e domain.Event) record {
	return record{
		Title:  e.Title,
		URL:    e.URL,
		Date:   e.Date.UTC().Format(time.RFC3339),
		Status: string(e.Status),
		City:   e.City,
		Venue:  e.Venue,
	}
}

func (r record) toEvent() (domain.Event, error) {
	date, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return domain.Event{}, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}
	status, ok := domain.ParseStatus(r.Status)
	if !ok {
		return domain.Event{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, r.Status)
	}
	return domain.Event{
		Title:  r.Title,
		URL:    r.URL,
		Date:   date,
		Status: status,
		City:   r.City,
		Venue:  r.Venue,
	}, nil
}
