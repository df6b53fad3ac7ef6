package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/manview-cli/internal/core/domain"
	"github.com/custodia-labs/manview-cli/internal/core/ports/driven"
	"github.com/custodia-labs/manview-cli/internal/core/ports/driving"
	"github.com/custodia-labs/manview-cli/internal/logger"
)

// Ensure PageService implements the interface.
var _ driving.PageService = (*PageService)(nil)

// PageService loads and parses manual pages.
type PageService struct {
	loader driven.PageLoader
	parser driven.PageParser
}

// NewPageService creates a page service over the given loader and parser.
func NewPageService(loader driven.PageLoader, parser driven.PageParser) *PageService {
	return &PageService{loader: loader, parser: parser}
}

// Open loads, decompresses and parses the page at path. On success the
// returned session takes ownership of the buffer; on any failure the
// buffer is released before the error propagates.
func (s *PageService) Open(_ context.Context, path string) (*domain.PageSession, error) {
	buf, err := s.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	page, err := s.parser.Parse(buf.Bytes())
	if err != nil {
		buf.Close()
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	logger.Debug("opened %s: %s(%s)", path, page.Title, page.Section)
	return domain.NewPageSession(page, buf.Bytes(), buf), nil
}
