package driving

import (
	"context"

	"github.com/custodia-labs/manview-cli/internal/core/domain"
)

// PageService opens manual pages for viewing.
type PageService interface {
	// Open loads, decompresses and parses the page at path. The returned
	// session owns the backing buffer and must be closed when the viewing
	// session ends. No partial session is returned on failure.
	Open(ctx context.Context, path string) (*domain.PageSession, error)
}
