package pager

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/manview-cli/internal/core/domain"
)

func newSession(lines int) *domain.PageSession {
	var sb strings.Builder
	sb.WriteString(".TH sample 1\n")
	for i := 0; i < lines-1; i++ {
		fmt.Fprintf(&sb, "body line %d\n", i)
	}
	return domain.NewPageSession(
		&domain.Page{Title: "sample", Section: "1"},
		[]byte(sb.String()),
		nil,
	)
}

func TestView_ShowsHeaderAndContent(t *testing.T) {
	v := NewView(nil)
	v.SetSession(newSession(5))
	v.SetSize(80, 24)

	out := v.View()
	assert.Contains(t, out, "sample(1)")
	assert.Contains(t, out, ".TH sample 1")
	assert.Contains(t, out, "body line 0")
}

func TestView_HeaderAtBothMargins(t *testing.T) {
	v := NewView(nil)
	v.SetSession(newSession(2))
	v.SetSize(60, 24)

	header := strings.Split(v.View(), "\n")[0]
	assert.Equal(t, 2, strings.Count(header, "sample(1)"))
}

func TestView_ScrollClamping(t *testing.T) {
	v := NewView(nil)
	v.SetSession(newSession(100))
	v.SetSize(80, 11) // header + 10 content rows

	// scrolling above the top stays at the top
	v.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, v.offset)

	v.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, v.offset)

	v.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.Equal(t, 90, v.offset)

	v.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 90, v.offset, "scrolling past the bottom stays at the bottom")

	v.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	assert.Equal(t, 0, v.offset)
}

func TestView_PageScroll(t *testing.T) {
	v := NewView(nil)
	v.SetSession(newSession(100))
	v.SetSize(80, 11)

	v.handleKey(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 10, v.offset)

	v.handleKey(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, v.offset)
}

func TestView_ResizeClampsOffset(t *testing.T) {
	v := NewView(nil)
	v.SetSession(newSession(30))
	v.SetSize(80, 11)
	v.handleKey(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 20, v.offset)

	// growing the window pulls the offset back into range
	v, _ = v.Update(tea.WindowSizeMsg{Width: 80, Height: 31})
	assert.Equal(t, 0, v.offset)
}

func TestView_SetSessionResetsScroll(t *testing.T) {
	v := NewView(nil)
	v.SetSession(newSession(50))
	v.SetSize(80, 11)
	v.handleKey(tea.KeyMsg{Type: tea.KeyEnd})
	require.NotZero(t, v.offset)

	v.SetSession(newSession(50))
	assert.Zero(t, v.offset)
}

func TestView_Error(t *testing.T) {
	v := NewView(nil)
	v.SetError(errors.New("no title found"))

	assert.Contains(t, v.View(), "no title found")
}
