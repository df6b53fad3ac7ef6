// Package watcher reports modifications to a viewed manual page so the
// UI can reload it.
package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/manview-cli/internal/logger"
)

// reloadInterval caps how often change events are delivered. Editors
// often write a file several times in quick succession; one reload is
// enough.
const reloadInterval = 500 * time.Millisecond

// Watcher watches a single page file and delivers its path on the Events
// channel each time it changes.
type Watcher struct {
	fw      *fsnotify.Watcher
	limiter *rate.Limiter
	events  chan string
}

// New starts watching the page at path. The parent directory is watched
// rather than the file itself: editors typically replace files instead of
// writing them in place.
func New(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		fw:      fw,
		limiter: rate.NewLimiter(rate.Every(reloadInterval), 1),
		events:  make(chan string, 1),
	}
	go w.run(filepath.Clean(path))
	return w, nil
}

// Events delivers the page path each time the file changes. The channel
// is closed when the watcher is closed.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Close stops watching and closes the Events channel.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) run(path string) {
	defer close(w.events)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !w.limiter.Allow() {
				continue
			}
			select {
			case w.events <- path:
			default:
				// a reload is already pending
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
