package driven

import "github.com/custodia-labs/manview-cli/internal/core/domain"

// PageParser turns raw troff source into the domain page model.
// Implementations build whatever per-session state they need (such as the
// macro trie) inside Parse; a parser value carries none between calls.
type PageParser interface {
	Parse(src []byte) (*domain.Page, error)
}
