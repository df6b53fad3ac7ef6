package driving

import (
	"context"

	"github.com/custodia-labs/manview-cli/internal/core/domain"
)

// IndexService maintains and queries the man-page index.
type IndexService interface {
	// Rebuild walks the manpath and replaces the stored index.
	// It returns the number of pages indexed.
	Rebuild(ctx context.Context) (int, error)

	// Resolve finds an indexed page by name, narrowed to section when
	// section is non-empty.
	Resolve(ctx context.Context, name, section string) (*domain.IndexEntry, error)

	// List returns indexed pages, filtered to section when non-empty.
	List(ctx context.Context, section string) ([]domain.IndexEntry, error)
}
