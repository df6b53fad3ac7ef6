package loader

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/custodia-labs/manview-cli/internal/core/domain"
	"github.com/custodia-labs/manview-cli/internal/core/ports/driven"
	"github.com/custodia-labs/manview-cli/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.PageLoader = (*Loader)(nil)

// gzip has a 10-byte mandatory header and an 8-byte mandatory footer;
// anything under 18 bytes cannot be compressed and is too small to be
// meaningful troff either.
const minPageSize = 18

var gzipMagic = []byte{0x1f, 0x8b, 0x08}

// Loader produces page buffers from files on disk.
type Loader struct{}

// New creates a loader.
func New() *Loader {
	return &Loader{}
}

// Load maps the file at path read-only and returns its troff source. A
// gzip-compressed page is decompressed into a fresh anonymous mapping and
// the file mapping is released. Exactly one mapping survives a successful
// call; none survives a failed one.
func (l *Loader) Load(path string) (driven.PageBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOpenFailed, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOpenFailed, err)
	}
	if info.Size() < minPageSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", domain.ErrFileTooSmall, path, info.Size())
	}

	buf, err := mapFile(int(f.Fd()), int(info.Size()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMapFailed, err)
	}
	if !bytes.HasPrefix(buf.Bytes(), gzipMagic) {
		return buf, nil
	}

	// compressed page: the file mapping is consumed here either way
	defer buf.Close()

	ubuf, err := inflate(buf.Bytes())
	if err != nil {
		return nil, err
	}
	logger.Debug("inflated %s: %d -> %d bytes", path, buf.length, ubuf.length)
	return ubuf, nil
}

// inflate decompresses a gzip-framed page into an anonymous mapping sized
// from the trailing little-endian ISIZE field.
func inflate(data []byte) (*Buffer, error) {
	ulen := binary.LittleEndian.Uint32(data[len(data)-4:])
	if ulen == 0 {
		return nil, fmt.Errorf("%w: zero uncompressed length", domain.ErrDecompressFailed)
	}

	ubuf, err := mapAnon(int(ulen))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMapFailed, err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		ubuf.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrDecompressFailed, err)
	}
	if _, err := io.ReadFull(zr, ubuf.Bytes()); err != nil {
		ubuf.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrDecompressFailed, err)
	}
	// the stream must end exactly at ISIZE, which also forces the
	// checksum to be verified
	var trail [1]byte
	if n, err := zr.Read(trail[:]); n != 0 || err != io.EOF {
		ubuf.Close()
		return nil, fmt.Errorf("%w: trailing data after %d bytes", domain.ErrDecompressFailed, ulen)
	}
	if err := zr.Close(); err != nil {
		ubuf.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrDecompressFailed, err)
	}
	return ubuf, nil
}
