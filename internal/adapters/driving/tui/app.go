// Package tui implements the interactive manual page viewer following the
// Elm architecture.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/manview-cli/internal/adapters/driven/watcher"
	"github.com/custodia-labs/manview-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/manview-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/manview-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/manview-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/manview-cli/internal/adapters/driving/tui/views/pager"
	"github.com/custodia-labs/manview-cli/internal/core/domain"
	"github.com/custodia-labs/manview-cli/internal/logger"
)

// App is the viewer application for a single manual page.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	ctx   context.Context

	path    string
	session *domain.PageSession
	watcher *watcher.Watcher

	styles *styles.Styles
	keymap *keymap.KeyMap
	pager  *pager.View
	bar    *status.Bar

	width  int
	height int
	ready  bool
	err    error
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a viewer for the page at path. A file watcher is started
// so on-disk changes reload the page; a watch failure is not fatal, the
// page just will not live-reload.
func NewApp(ports *Ports, path string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	a := &App{
		ports:  ports,
		ctx:    context.Background(),
		path:   path,
		styles: s,
		keymap: keymap.DefaultKeyMap(),
		pager:  pager.NewView(s),
		bar:    status.NewBar(s),
	}

	w, err := watcher.New(path)
	if err != nil {
		logger.Warn("not watching %s: %v", path, err)
	} else {
		a.watcher = w
	}
	return a, nil
}

// WithContext sets the context used when opening page sessions.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Close releases the page session and the watcher. Called by the driver
// once the program has quit.
func (a *App) Close() error {
	if a.watcher != nil {
		a.watcher.Close()
	}
	return a.session.Close()
}

// Err returns the error the viewer ended with, if any.
func (a *App) Err() error {
	return a.err
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadPage(), a.waitForChange())
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// bottom row belongs to the status bar
		a.pager.SetSize(msg.Width, msg.Height-1)
		a.bar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keymap.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keymap.Refresh):
			return a, tea.ClearScreen
		}
		a.pager, _ = a.pager.Update(msg)
		return a, nil

	case messages.PageLoaded:
		return a.handlePageLoaded(msg)

	case messages.PageChanged:
		logger.Debug("%s changed, reloading", msg.Path)
		return a, tea.Batch(a.loadPage(), a.waitForChange())

	case messages.WatchStopped:
		return a, nil
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return a.styles.Muted.Render("loading...")
	}
	return a.pager.View() + "\n" + a.bar.View()
}

func (a *App) handlePageLoaded(msg messages.PageLoaded) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// an initial failure ends the viewer; a failed reload keeps the
		// last good page on screen
		if a.session == nil {
			a.err = msg.Err
			return a, tea.Quit
		}
		a.bar.SetNote("reload failed")
		logger.Warn("reloading %s: %v", msg.Path, msg.Err)
		return a, nil
	}

	old := a.session
	a.session = msg.Session
	a.pager.SetSession(msg.Session)
	a.bar.SetPage(msg.Session.Page.Title, msg.Session.Page.Section)
	if old != nil {
		old.Close()
	}
	return a, nil
}

// loadPage opens a fresh page session off the Update loop.
func (a *App) loadPage() tea.Cmd {
	return func() tea.Msg {
		sess, err := a.ports.Page.Open(a.ctx, a.path)
		return messages.PageLoaded{Path: a.path, Session: sess, Err: err}
	}
}

// waitForChange blocks on the next watcher event.
func (a *App) waitForChange() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-a.watcher.Events()
		if !ok {
			return messages.WatchStopped{}
		}
		return messages.PageChanged{Path: path}
	}
}

// Run drives the viewer to completion on the attached terminal.
func Run(ports *Ports, path string) error {
	app, err := NewApp(ports, path)
	if err != nil {
		return err
	}
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	model, err := p.Run()
	if err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	if a, ok := model.(*App); ok && a.Err() != nil {
		return a.Err()
	}
	return nil
}
