package troff

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/manview-cli/internal/core/domain"
)

var (
	errNoToken      = errors.New("no token")
	errUnterminated = errors.New("unterminated quote")
)

// lexTitle extracts the title and manual section from the raw text of the
// page's .TH line. The fields ought to be quoted, but might not be. A
// version slot (header-middle) exists in the model but is not populated.
func lexTitle(page *domain.Page) error {
	text := page.Root.Text

	title, next, err := nextToken(text, 0)
	if err != nil {
		return fmt.Errorf("%w [%s]", domain.ErrTitleExtraction, text)
	}
	section, _, err := nextToken(text, next)
	if err != nil {
		return fmt.Errorf("%w [%s]", domain.ErrSectionExtraction, text)
	}

	page.Title = title
	page.Section = section
	return nil
}

// nextToken returns the first token at or after pos, and the position one
// past its delimiter. A token is either a double-quote-delimited span
// (closing quote required) or a maximal run of non-whitespace bytes; an
// unquoted token also ends at a quote, which then begins a new quoted
// span rather than joining the token.
func nextToken(s string, pos int) (string, int, error) {
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	if pos >= len(s) {
		return "", 0, errNoToken
	}

	if s[pos] == '"' {
		end := pos + 1
		for end < len(s) && s[end] != '"' {
			end++
		}
		if end >= len(s) {
			return "", 0, errUnterminated
		}
		return s[pos+1 : end], end + 1, nil
	}

	end := pos
	for end < len(s) && !isSpace(s[end]) && s[end] != '"' {
		end++
	}
	return s[pos:end], end, nil
}
