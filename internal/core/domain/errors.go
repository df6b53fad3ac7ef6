package domain

import "errors"

// Domain errors represent failures of the page pipeline.
// These are distinct from infrastructure errors.
var (
	// Loader errors.

	// ErrOpenFailed indicates the page file cannot be opened or read.
	ErrOpenFailed = errors.New("cannot open page")

	// ErrFileTooSmall indicates the file is under the 18-byte minimum.
	// A gzip frame needs a 10-byte header and an 8-byte footer, and
	// anything shorter is too small to be meaningful troff either.
	ErrFileTooSmall = errors.New("file too small to be a manual page")

	// ErrMapFailed indicates a memory mapping could not be created.
	ErrMapFailed = errors.New("memory mapping failed")

	// ErrDecompressFailed indicates the gzip signature was present but
	// the payload is corrupt or truncated.
	ErrDecompressFailed = errors.New("gzip decompression failed")

	// Trie construction errors. Both indicate a defect in the static
	// macro table rather than malformed input, and are unrecoverable.

	// ErrIllegalSymbol indicates a macro symbol byte outside 7-bit ASCII.
	ErrIllegalSymbol = errors.New("illegal macro symbol")

	// ErrDuplicateMacro indicates two descriptors share a symbol path.
	ErrDuplicateMacro = errors.New("duplicate macro registration")

	// Structural parse errors.

	// ErrDuplicateTitle indicates a second .TH line was encountered.
	ErrDuplicateTitle = errors.New("found a second title")

	// ErrEmptyTitle indicates a .TH line with no usable content.
	ErrEmptyTitle = errors.New("bogus empty title")

	// ErrNoTitle indicates the buffer ended without any .TH line.
	ErrNoTitle = errors.New("no title found")

	// ErrTitleExtraction indicates the title token is missing or has an
	// unterminated quote.
	ErrTitleExtraction = errors.New("couldn't extract title")

	// ErrSectionExtraction indicates the section token is missing or has
	// an unterminated quote.
	ErrSectionExtraction = errors.New("couldn't extract section")

	// Index errors.

	// ErrNotFound indicates a requested entry does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
