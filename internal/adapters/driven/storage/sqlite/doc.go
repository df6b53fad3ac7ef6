// Package sqlite provides a SQLite-backed implementation of the
// IndexStore driven port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. The schema is
// managed through versioned migrations embedded from the migrations/
// directory.
//
// By default, the database is stored at ~/.manview/data/index.db.
package sqlite
