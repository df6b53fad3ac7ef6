package driven

// PageBuffer is an owned, immutable region of troff source. Exactly one
// buffer is live per page session; whoever holds it must close it exactly
// once, on every path.
type PageBuffer interface {
	// Bytes returns the source content. The slice is only valid until
	// Close.
	Bytes() []byte

	// Close releases the underlying region. Safe to call more than once.
	Close() error
}

// PageLoader produces page buffers from files on disk, transparently
// decompressing gzip-compressed pages.
type PageLoader interface {
	// Load returns the troff source of the file at path. The caller owns
	// the returned buffer; on error no resource is left behind.
	Load(path string) (PageBuffer, error)
}
