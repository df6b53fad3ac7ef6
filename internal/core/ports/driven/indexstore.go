package driven

import (
	"context"

	"github.com/custodia-labs/manview-cli/internal/core/domain"
)

// IndexStore persists the man-page index.
// Backed by SQLite for metadata storage.
type IndexStore interface {
	// Replace atomically swaps the stored index for entries.
	Replace(ctx context.Context, entries []domain.IndexEntry) error

	// Find returns the entry for name, narrowed to section when section
	// is non-empty. Returns domain.ErrNotFound when nothing matches.
	Find(ctx context.Context, name, section string) (*domain.IndexEntry, error)

	// List returns entries ordered by name, filtered to section when
	// section is non-empty.
	List(ctx context.Context, section string) ([]domain.IndexEntry, error)

	// Close releases the store.
	Close() error
}
