package services

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/manview-cli/internal/core/domain"
	"github.com/custodia-labs/manview-cli/internal/core/ports/driven"
	"github.com/custodia-labs/manview-cli/internal/core/ports/driving"
	"github.com/custodia-labs/manview-cli/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexService maintains the man-page index: every page found on the
// manpath with a parseable header gets an entry.
type IndexService struct {
	pages   driving.PageService
	store   driven.IndexStore
	manpath []string
}

// NewIndexService creates an index service scanning the given manpath.
func NewIndexService(pages driving.PageService, store driven.IndexStore, manpath []string) *IndexService {
	return &IndexService{pages: pages, store: store, manpath: manpath}
}

// Rebuild walks the manpath, parses every page it can, and replaces the
// stored index. Pages that fail to load or parse are skipped, not fatal;
// a page with a bad header should not block the rest of the manpath.
func (s *IndexService) Rebuild(ctx context.Context) (int, error) {
	var entries []domain.IndexEntry
	for _, dir := range s.manpath {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Warn("walking %s: %v", path, err)
				return nil
			}
			if d.IsDir() || !isManPage(path) {
				return nil
			}

			sess, err := s.pages.Open(ctx, path)
			if err != nil {
				logger.Debug("skipping %s: %v", path, err)
				return nil
			}
			entries = append(entries, domain.IndexEntry{
				ID:        uuid.New().String(),
				Name:      pageName(path),
				Section:   sess.Page.Section,
				Title:     sess.Page.Title,
				Path:      path,
				IndexedAt: time.Now(),
			})
			return sess.Close()
		})
		if err != nil {
			return 0, fmt.Errorf("walking %s: %w", dir, err)
		}
	}

	if err := s.store.Replace(ctx, entries); err != nil {
		return 0, fmt.Errorf("storing index: %w", err)
	}
	logger.Info("indexed %d pages", len(entries))
	return len(entries), nil
}

// Resolve finds an indexed page by name, narrowed to a section when
// section is non-empty.
func (s *IndexService) Resolve(ctx context.Context, name, section string) (*domain.IndexEntry, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty page name", domain.ErrInvalidInput)
	}
	return s.store.Find(ctx, name, section)
}

// List returns indexed pages, filtered to section when non-empty.
func (s *IndexService) List(ctx context.Context, section string) ([]domain.IndexEntry, error) {
	return s.store.List(ctx, section)
}

// isManPage reports whether path looks like a manual page file: a section
// extension whose first character is a digit, with an optional trailing
// .gz.
func isManPage(path string) bool {
	base := strings.TrimSuffix(filepath.Base(path), ".gz")
	ext := filepath.Ext(base)
	return len(ext) >= 2 && ext[1] >= '1' && ext[1] <= '9'
}

// pageName derives the page name from the file name: "ls.1.gz" -> "ls".
func pageName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base))
}
