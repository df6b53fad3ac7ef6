// Package status provides the status bar component for the TUI.
package status

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/manview-cli/internal/adapters/driving/tui/styles"
)

// usageText is the key hint shown on the right-hand side of the bar.
const usageText = "(q)uit"

// Bar displays the viewed page identity and key hints, pinned to the
// bottom row of the screen.
type Bar struct {
	styles  *styles.Styles
	title   string
	section string
	note    string
	width   int
}

// NewBar creates a status bar.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Bar{
		styles: s,
		width:  80,
	}
}

// SetPage sets the page identity shown on the left.
func (b *Bar) SetPage(title, section string) {
	b.title = title
	b.section = section
	b.note = ""
}

// SetNote sets a transient note shown after the page identity.
func (b *Bar) SetNote(note string) {
	b.note = note
}

// SetWidth sets the render width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.styles.BarTitle.Render(b.title) +
		b.styles.StatusBar.Render("(") +
		b.styles.BarTitle.Render(b.section) +
		b.styles.StatusBar.Render(")")
	if b.note != "" {
		left += b.styles.StatusBar.Render(" " + b.note)
	}
	right := b.styles.BarHint.Render(usageText)

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}
