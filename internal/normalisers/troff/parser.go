package troff

import (
	"fmt"

	"github.com/custodia-labs/manview-cli/internal/core/domain"

	"github.com/custodia-labs/manview-cli/internal/logger"
)

// Parser turns raw troff source into the domain page model. It is
// stateless; every Parse call builds a fresh macro trie for its session.
type Parser struct{}

// New creates a troff parser.
func New() *Parser {
	return &Parser{}
}

// Parse walks src exactly once, line by line, classifying each line's
// leading macro and extracting the header fields from the .TH line. Body
// macros are recognised but not interpreted. It fails without a title by
// end of input, on a second title line, and on a malformed title line.
func (p *Parser) Parse(src []byte) (*domain.Page, error) {
	trie, err := NewTrie(domain.Macros())
	if err != nil {
		return nil, fmt.Errorf("building macro trie: %w", err)
	}

	page := &domain.Page{}
	for off := 0; off < len(src); {
		end := off
		for end < len(src) && src[end] != '\n' {
			end++
		}
		// the content span never includes the terminating newline
		line := src[off:end]

		if macro, consumed := trie.Classify(line); macro != nil {
			logger.Debug("line %d: .%s (%s)", off, macro.Symbol, macro.Kind)
			if macro.Line == domain.LineTH {
				if err := p.title(page, line[consumed:]); err != nil {
					return nil, err
				}
			}
		}
		off = end + 1
	}

	if page.Root == nil {
		return nil, domain.ErrNoTitle
	}
	return page, nil
}

// title records the .TH line rooted at rest, the span between the macro
// symbol and the end of the line.
func (p *Parser) title(page *domain.Page, rest []byte) error {
	if page.Root != nil {
		return fmt.Errorf("%w (was %q)", domain.ErrDuplicateTitle, page.Title)
	}
	// a viable title needs at least a separator and one content byte
	if len(rest) < 2 {
		return domain.ErrEmptyTitle
	}
	page.Root = &domain.PageNode{
		Text:  string(rest[1:]),
		Level: domain.LevelSection,
	}
	return lexTitle(page)
}
