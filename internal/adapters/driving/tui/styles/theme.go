// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the viewer.
type Theme struct {
	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// BarBackground is the status bar background.
	BarBackground lipgloss.Color

	// BarForeground is the status bar text colour.
	BarForeground lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Foreground:    lipgloss.Color("#CDD6F4"), // Light gray
		Muted:         lipgloss.Color("#6C7086"), // Medium gray
		Error:         lipgloss.Color("#F38BA8"), // Red
		BarBackground: lipgloss.Color("#266241"), // Deep green
		BarForeground: lipgloss.Color("#FFFFFF"), // White
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the page title.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// BarTitle style for the bold page name in the status bar.
	BarTitle lipgloss.Style

	// BarHint style for the italic key hints in the status bar.
	BarHint lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		StatusBar: lipgloss.NewStyle().
			Background(theme.BarBackground).
			Foreground(theme.BarForeground),

		BarTitle: lipgloss.NewStyle().
			Background(theme.BarBackground).
			Foreground(theme.BarForeground).
			Bold(true),

		BarHint: lipgloss.NewStyle().
			Background(theme.BarBackground).
			Foreground(theme.BarForeground).
			Italic(true),
	}
}

// DefaultStyles creates styles from the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}
