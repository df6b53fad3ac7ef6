// Package pager provides the page content view component for the TUI.
package pager

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/manview-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/manview-cli/internal/core/domain"
)

// View is the scrollable page content view. It shows a header line with
// the page identity at both margins, followed by the raw troff source;
// rendering body macros is out of scope, the header fields are the
// interpreted part.
type View struct {
	styles *styles.Styles

	title   string
	section string
	lines   []string
	offset  int
	width   int
	height  int
	err     error
}

// NewView creates a pager view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80, height: 24}
}

// SetSession loads a page session into the pager.
func (v *View) SetSession(sess *domain.PageSession) {
	v.title = sess.Page.Title
	v.section = sess.Page.Section
	v.lines = strings.Split(strings.TrimRight(string(sess.Source), "\n"), "\n")
	v.offset = 0
	v.err = nil
}

// SetError shows an error instead of page content.
func (v *View) SetError(err error) {
	v.err = err
}

// SetSize sets the render size.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.clampOffset()
}

// Update handles messages for the pager.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		v.handleKey(msg)
		return v, nil
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		v.offset--
	case "down", "j":
		v.offset++
	case "pgup", "ctrl+u":
		v.offset -= v.visibleLines()
	case "pgdown", "ctrl+d", " ":
		v.offset += v.visibleLines()
	case "home", "g":
		v.offset = 0
	case "end", "G":
		v.offset = v.maxOffset()
	}
	v.clampOffset()
}

// View renders the pager.
func (v *View) View() string {
	if v.err != nil {
		return v.styles.Error.Render(v.err.Error())
	}

	var sb strings.Builder
	sb.WriteString(v.header())
	sb.WriteByte('\n')

	end := v.offset + v.visibleLines()
	if end > len(v.lines) {
		end = len(v.lines)
	}
	for _, line := range v.lines[v.offset:end] {
		sb.WriteString(v.styles.Normal.Render(truncate(line, v.width)))
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

// header renders the page identity at both margins, like the top line of
// a rendered manual page.
func (v *View) header() string {
	ident := v.title + "(" + v.section + ")"
	left := v.styles.Title.Render(ident)
	right := v.styles.Title.Render(ident)

	padding := v.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		return left
	}
	return left + strings.Repeat(" ", padding) + right
}

// visibleLines is the number of content rows below the header.
func (v *View) visibleLines() int {
	if v.height <= 1 {
		return 1
	}
	return v.height - 1
}

func (v *View) maxOffset() int {
	max := len(v.lines) - v.visibleLines()
	if max < 0 {
		return 0
	}
	return max
}

func (v *View) clampOffset() {
	if v.offset > v.maxOffset() {
		v.offset = v.maxOffset()
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

func truncate(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	return s[:width]
}
