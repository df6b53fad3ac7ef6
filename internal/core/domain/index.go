package domain

import "time"

// IndexEntry is one row of the man-page index: a page discovered on the
// manpath with the header fields extracted from its .TH line.
type IndexEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// Name is the page name derived from the file name (e.g. "ls").
	Name string

	// Section is the manual section parsed from the page header.
	Section string

	// Title is the title parsed from the page header.
	Title string

	// Path is the absolute location of the page file.
	Path string

	// IndexedAt is when the page was last indexed.
	IndexedAt time.Time
}
