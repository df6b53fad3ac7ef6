package troff

import (
	"fmt"

	"github.com/custodia-labs/manview-cli/internal/core/domain"
)

// Trie dispatches troff macro symbols to their descriptors. It is rooted
// at the implicit leading period of a request line and keyed on the 7-bit
// ASCII bytes of each registered symbol. Children are held in sparse maps;
// the dispatch contract is an exact path match over the first run of
// non-whitespace bytes after the period.
type Trie struct {
	root *trieNode
}

type trieNode struct {
	next  map[byte]*trieNode
	macro *domain.Macro
}

// NewTrie builds a trie from the given macro table. Descriptors with an
// empty symbol are skipped. Construction fails on a symbol byte outside
// 7-bit ASCII or on two descriptors sharing a symbol path; both indicate
// a defect in the table, not bad input.
func NewTrie(macros []domain.Macro) (*Trie, error) {
	root := newTrieNode()
	for i := range macros {
		m := &macros[i]
		if m.Symbol == "" {
			continue
		}
		n := root
		for j := 0; j < len(m.Symbol); j++ {
			b := m.Symbol[j]
			if b > 0x7f {
				return nil, fmt.Errorf("%w: %q", domain.ErrIllegalSymbol, m.Symbol)
			}
			child, ok := n.next[b]
			if !ok {
				child = newTrieNode()
				n.next[b] = child
			}
			n = child
		}
		if n.macro != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateMacro, m.Symbol)
		}
		n.macro = m
	}
	return &Trie{root: root}, nil
}

func newTrieNode() *trieNode {
	return &trieNode{next: make(map[byte]*trieNode)}
}

// Classify reads the macro symbol at the start of line. It returns the
// matched descriptor and the number of bytes consumed (the period plus the
// symbol). It returns (nil, 0) when the line does not start with a period,
// when a byte leaves the trie, or when the symbol ends on an untagged
// node. The scan never reads past len(line).
func (t *Trie) Classify(line []byte) (*domain.Macro, int) {
	if len(line) == 0 || line[0] != '.' {
		return nil, 0
	}
	n := t.root
	i := 1
	for i < len(line) && !isSpace(line[i]) && line[i] != 0 {
		b := line[i]
		if b > 0x7f {
			return nil, 0
		}
		if n = n.next[b]; n == nil {
			return nil, 0
		}
		i++
	}
	if n.macro == nil {
		return nil, 0
	}
	return n.macro, i
}

// isSpace matches the whitespace set troff cares about.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
