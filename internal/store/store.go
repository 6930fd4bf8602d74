package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// ErrNotFound reports a saved layout id that is not in the library.
var ErrNotFound = errors.New("layout not found")

const schema = `
CREATE TABLE IF NOT EXISTS layouts (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	document   TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`

// SavedLayout is one library entry. Document is the exact layout-document
// JSON, so restoring goes through the same import gate as a file import.
type SavedLayout struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is the sqlite-backed layout library.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the library database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening layout store: %w", err)
	}
	// The embedded sqlite build serializes writers; a single connection
	// avoids busy errors entirely at this scale.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating layout store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save adds a named layout document to the library.
func (s *Store) Save(ctx context.Context, name string, document []byte) (SavedLayout, error) {
	now := time.Now().UTC()
	entry := SavedLayout{
		ID:        uuid.NewString(),
		Name:      name,
		Document:  string(document),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO layouts (id, name, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, entry.ID, entry.Name, entry.Document, entry.CreatedAt, entry.UpdatedAt)
	if err != nil {
		return SavedLayout{}, fmt.Errorf("saving layout: %w", err)
	}
	return entry, nil
}

// List returns all saved layouts, newest first, without their documents.
func (s *Store) List(ctx context.Context) ([]SavedLayout, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM layouts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing layouts: %w", err)
	}
	defer rows.Close()

	entries := []SavedLayout{}
	for rows.Next() {
		var e SavedLayout
		if err := rows.Scan(&e.ID, &e.Name, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning layout row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns one saved layout with its document.
func (s *Store) Get(ctx context.Context, id string) (SavedLayout, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, document, created_at, updated_at
		FROM layouts
		WHERE id = ?
	`, id)

	var e SavedLayout
	if err := row.Scan(&e.ID, &e.Name, &e.Document, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SavedLayout{}, ErrNotFound
		}
		return SavedLayout{}, fmt.Errorf("loading layout: %w", err)
	}
	return e, nil
}

// Delete removes a saved layout and reports whether it existed.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM layouts WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting layout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting layout: %w", err)
	}
	return n > 0, nil
}
