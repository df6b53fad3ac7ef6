package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/manview-cli/internal/core/domain"
)

type fakePageService struct {
	pages map[string]*domain.Page
}

func (f *fakePageService) Open(_ context.Context, path string) (*domain.PageSession, error) {
	page, ok := f.pages[path]
	if !ok {
		return nil, domain.ErrOpenFailed
	}
	return domain.NewPageSession(page, nil, nil), nil
}

type fakeIndexService struct {
	entries []domain.IndexEntry
}

func (f *fakeIndexService) Rebuild(context.Context) (int, error) {
	return len(f.entries), nil
}

func (f *fakeIndexService) Resolve(_ context.Context, name, section string) (*domain.IndexEntry, error) {
	for i := range f.entries {
		if f.entries[i].Name != name {
			continue
		}
		if section != "" && f.entries[i].Section != section {
			continue
		}
		return &f.entries[i], nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeIndexService) List(_ context.Context, section string) ([]domain.IndexEntry, error) {
	if section == "" {
		return f.entries, nil
	}
	var out []domain.IndexEntry
	for _, e := range f.entries {
		if e.Section == section {
			out = append(out, e)
		}
	}
	return out, nil
}

// swapServices installs fakes and restores the previous services when the
// test ends.
func swapServices(t *testing.T, pages *fakePageService, index *fakeIndexService) {
	t.Helper()
	origPage, origIndex := pageService, indexService
	if pages != nil {
		pageService = pages
	}
	if index != nil {
		indexService = index
	}
	t.Cleanup(func() {
		pageService, indexService = origPage, origIndex
	})
}

func testCmd() (*cobra.Command, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	return cmd, buf
}

func TestRunView_NoArgs(t *testing.T) {
	swapServices(t, &fakePageService{}, nil)
	cmd, _ := testCmd()

	err := runView(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "what manual page")
}

func TestRunView_PathArg(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ls.1")
	require.NoError(t, os.WriteFile(path, []byte(".TH ls 1\n"), 0o644))

	svc := &fakePageService{pages: map[string]*domain.Page{
		path: {Title: "ls", Section: "1"},
	}}
	swapServices(t, svc, nil)

	// stdout is not a terminal under go test, so the page identity is
	// printed instead of launching the viewer
	cmd, buf := testCmd()
	require.NoError(t, runView(cmd, []string{path}))
	assert.Contains(t, buf.String(), "ls(1)")
}

func TestRunView_NameResolvedThroughIndex(t *testing.T) {
	svc := &fakePageService{pages: map[string]*domain.Page{
		"/usr/share/man/man8/mount.8": {Title: "mount", Section: "8"},
	}}
	idx := &fakeIndexService{entries: []domain.IndexEntry{
		{Name: "mount", Section: "8", Path: "/usr/share/man/man8/mount.8"},
	}}
	swapServices(t, svc, idx)

	cmd, buf := testCmd()
	require.NoError(t, runView(cmd, []string{"mount"}))
	assert.Contains(t, buf.String(), "mount(8)")
}

func TestRunView_UnknownName(t *testing.T) {
	swapServices(t, &fakePageService{}, &fakeIndexService{})

	cmd, _ := testCmd()
	err := runView(cmd, []string{"no-such-page"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no manual entry for no-such-page")
}

func TestSplitPageArg(t *testing.T) {
	tests := []struct {
		arg     string
		name    string
		section string
	}{
		{"ls", "ls", ""},
		{"ls.1", "ls", "1"},
		{"mount.8", "mount", "8"},
		{"getopt.3p", "getopt", "3p"},
		{"config.toml", "config.toml", ""},
		{".hidden", ".hidden", ""},
		{"trailing.", "trailing.", ""},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			name, section := splitPageArg(tt.arg)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.section, section)
		})
	}
}
