package loader

import (
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// active counts live mappings across the process.
var active atomic.Int64

// ActiveMappings reports the number of mappings currently held. Intended
// for resource-safety assertions in tests.
func ActiveMappings() int64 {
	return active.Load()
}

// Buffer is an owned, contiguous memory-mapped region holding troff
// source. The valid content may be shorter than the mapping itself when
// the region was rounded up to the page size.
type Buffer struct {
	data   []byte
	length int
	closed bool
}

// Bytes returns the valid content of the buffer. The slice is only valid
// until Close.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.length]
}

// Close releases the mapping exactly once. Further calls are no-ops.
func (b *Buffer) Close() error {
	if b == nil || b.closed {
		return nil
	}
	b.closed = true
	active.Add(-1)
	return unix.Munmap(b.data)
}

// mapFile maps size bytes of fd read-only.
func mapFile(fd int, size int) (*Buffer, error) {
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	active.Add(1)
	return &Buffer{data: data, length: size}, nil
}

// mapAnon maps a writable anonymous region of at least size bytes,
// rounded up to the platform page size.
func mapAnon(size int) (*Buffer, error) {
	pg := unix.Getpagesize()
	rounded := (size + pg - 1) / pg * pg
	data, err := unix.Mmap(-1, 0, rounded,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	active.Add(1)
	return &Buffer{data: data, length: size}, nil
}
