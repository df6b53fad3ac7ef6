// Package loader maps manual page files into memory and transparently
// decompresses gzip-compressed pages into a fresh mapping.
//
// Mapped regions are the only externally visible shared resource of the
// pipeline. Every region acquired here is released on every exit path;
// the package keeps a live-mapping count so tests can verify that no
// mapping survives a failed load.
package loader
