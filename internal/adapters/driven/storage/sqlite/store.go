// Package sqlite provides an SQLite-backed collection store. The JSON
// file remains the canonical interchange form; this backend exists for
// users who prefer a single database file that other tooling can query.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/gigfolio/gigfolio-cli/internal/core/domain"
	"github.com/gigfolio/gigfolio-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CollectionStore = (*Store)(nil)

const schema = `
	CREATE TABLE IF NOT EXISTS events (
		position INTEGER PRIMARY KEY,
		title    TEXT NOT NULL,
		url      TEXT NOT NULL,
		date     TEXT NOT NULL,
		status   TEXT NOT NULL,
		city     TEXT NOT NULL,
		venue    TEXT NOT NULL
	)
`

// Store is an SQLite implementation of driven.CollectionStore. It keeps
// the same load-all / save-all contract as the file store; the collection
// is small enough that replacing it wholesale inside one transaction is
// simpler and safer than per-row updates.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates an SQLite store at dataDir/events.db.
// If dataDir is empty, defaults to ~/.gigfolio.
func NewStore(dataDir string) (*Store, error) {
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

	dbPath := filepath.Join(dataDir, "events.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating events table: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted collection in stored order.
func (s *Store) Load(ctx context.Context) ([]domain.Event, bool, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT title, url, date, status, city, venue FROM events ORDER BY position")
	if err != nil {
		return nil, false, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var title, url, dateStr, statusStr, city, venue string
		if err := rows.Scan(&title, &url, &dateStr, &statusStr, &city, &venue); err != nil {
			return nil, false, fmt.Errorf("scanning event: %w", err)
		}

		date, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			return nil, false, fmt.Errorf("invalid stored date %q: %w", dateStr, err)
		}
		status, ok := domain.ParseStatus(statusStr)
		if !ok {
			return nil, false, fmt.Errorf("%w: unknown stored status %q", domain.ErrInvalidInput, statusStr)
		}

		events = append(events, domain.Event{
			Title:  title,
			URL:    url,
			Date:   date,
			Status: status,
			City:   city,
			Venue:  venue,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("reading events: %w", err)
	}

	return events, true, nil
}

// Save replaces the stored collection inside a single transaction.
func (s *Store) Save(ctx context.Context, events []domain.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM events"); err != nil {
		return fmt.Errorf("clearing events: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO events (position, title, url, date, status, city, venue) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range events {
		_, err := stmt.ExecContext(ctx, i,
			e.Title, e.URL, e.Date.UTC().Format(time.RFC3339), string(e.Status), e.City, e.Venue)
		if err != nil {
			return fmt.Errorf("inserting event %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
