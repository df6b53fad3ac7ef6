// Package troff parses troff-formatted manual pages into the domain page
// model. Macro lines are dispatched through a trie built from the static
// macro table; only the .TH header is interpreted, everything else is
// classified and carried as-is.
package troff
