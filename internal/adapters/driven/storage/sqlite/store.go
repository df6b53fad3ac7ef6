package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/manview-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/manview-cli/internal/core/domain"
	"github.com/custodia-labs/manview-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.IndexStore = (*Store)(nil)

// Store is a SQLite-backed man-page index.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store in the given data directory. If dataDir
// is empty, defaults to ~/.manview/data/index.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".manview", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "index.db")

	// WAL mode keeps readers unblocked while the index is rebuilt
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// migrate applies all embedded migration files in lexical order.
func (s *Store) migrate(fsys fs.FS) error {
	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		script, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		if _, err := s.db.Exec(string(script)); err != nil {
			return fmt.Errorf("applying %s: %w", file, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Replace atomically swaps the stored index for entries.
func (s *Store) Replace(ctx context.Context, entries []domain.IndexEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM pages"); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO pages (id, name, section, title, path, indexed_at) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.ID, e.Name, e.Section, e.Title, e.Path, e.IndexedAt); err != nil {
			return fmt.Errorf("inserting %s(%s): %w", e.Name, e.Section, err)
		}
	}
	return tx.Commit()
}

// Find returns the entry for name, narrowed to section when non-empty.
func (s *Store) Find(ctx context.Context, name, section string) (*domain.IndexEntry, error) {
	query := "SELECT id, name, section, title, path, indexed_at FROM pages WHERE name = ?"
	args := []any{name}
	if section != "" {
		query += " AND section = ?"
		args = append(args, section)
	}
	query += " ORDER BY section LIMIT 1"

	var e domain.IndexEntry
	row := s.db.QueryRowContext(ctx, query, args...)
	err := row.Scan(&e.ID, &e.Name, &e.Section, &e.Title, &e.Path, &e.IndexedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", name, err)
	}
	return &e, nil
}

// List returns entries ordered by name then section, filtered to section
// when non-empty.
func (s *Store) List(ctx context.Context, section string) ([]domain.IndexEntry, error) {
	query := "SELECT id, name, section, title, path, indexed_at FROM pages"
	var args []any
	if section != "" {
		query += " WHERE section = ?"
		args = append(args, section)
	}
	query += " ORDER BY name, section"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	defer rows.Close()

	var entries []domain.IndexEntry
	for rows.Next() {
		var e domain.IndexEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Section, &e.Title, &e.Path, &e.IndexedAt); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
