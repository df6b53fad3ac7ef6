// Package domain defines the core business entities for manview.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Page: a parsed manual page with its title, section and node tree
//   - PageNode: one structural node (section, subsection, paragraph)
//   - PageSession: a viewing session owning the page and its backing buffer
//   - Macro: a troff request descriptor from the static macro table
//   - IndexEntry: one row of the man-page index
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
