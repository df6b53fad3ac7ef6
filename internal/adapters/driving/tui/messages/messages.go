// Package messages defines the Bubbletea messages shared between the TUI
// app and its views.
package messages

import "github.com/custodia-labs/manview-cli/internal/core/domain"

// PageLoaded reports the result of opening a page session.
type PageLoaded struct {
	Path    string
	Session *domain.PageSession
	Err     error
}

// PageChanged reports that the viewed file was modified on disk.
type PageChanged struct {
	Path string
}

// WatchStopped reports that the file watcher shut down.
type WatchStopped struct{}
