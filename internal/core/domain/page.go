package domain

import "io"

// NodeLevel places a node within the page hierarchy.
type NodeLevel int

const (
	LevelSection NodeLevel = iota
	LevelSubsection
	LevelParagraph
)

// PageNode is one structural node of a manual page. Only the title-bearing
// root node is populated by the current parser; the child machinery is
// kept for forward compatibility.
type PageNode struct {
	// Text is the raw troff text of the node's introducing line.
	Text string

	// Level is the node's place in the hierarchy.
	Level NodeLevel

	// Children are the node's sub-nodes, in document order.
	Children []*PageNode
}

// Page is the parsed document model of a single manual page.
// It is read-only for the duration of a viewing session.
type Page struct {
	// Root is the structural entry point of the page.
	Root *PageNode

	// Title is the page title from the .TH line (footer-inside).
	Title string

	// Section is the manual section from the .TH line (footer-middle).
	Section string

	// Version is the header-middle field. Not populated by the current
	// parser; the slot exists in the model.
	Version string
}

// PageSession is one viewing session of a parsed page. It owns the backing
// buffer of Source and releases it exactly once when closed, no matter how
// often Close is called.
type PageSession struct {
	// Page is the parsed document model.
	Page *Page

	// Source is the raw troff source, valid until Close.
	Source []byte

	buf    io.Closer
	closed bool
}

// NewPageSession creates a session owning buf. buf may be nil when the
// source is not backed by a releasable resource.
func NewPageSession(page *Page, source []byte, buf io.Closer) *PageSession {
	return &PageSession{Page: page, Source: source, buf: buf}
}

// Close releases the backing buffer. Subsequent calls are no-ops.
func (s *PageSession) Close() error {
	if s == nil || s.closed || s.buf == nil {
		return nil
	}
	s.closed = true
	return s.buf.Close()
}
