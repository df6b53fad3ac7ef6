package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/manview-cli/internal/adapters/driving/tui"
)

// runView is the default command: view each named page in turn.
func runView(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("what manual page do you want?")
	}
	if pageService == nil {
		return errors.New("page service not configured")
	}

	ctx := context.Background()
	for _, arg := range args {
		path, err := resolvePage(ctx, arg)
		if err != nil {
			return err
		}
		if err := showPage(cmd, path); err != nil {
			return err
		}
	}
	return nil
}

// resolvePage maps a command line argument to a page file. An existing
// path is used as-is; anything else is looked up in the index, with an
// optional ".<section>" suffix narrowing the match.
func resolvePage(ctx context.Context, arg string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	if err := ensureIndexService(); err != nil {
		return "", err
	}

	name, section := splitPageArg(arg)
	entry, err := indexService.Resolve(ctx, name, section)
	if err != nil {
		return "", fmt.Errorf("no manual entry for %s: %w", arg, err)
	}
	return entry.Path, nil
}

// splitPageArg separates an optional section suffix, so "ls.1" narrows
// the lookup to section 1 while "config.toml" stays a plain name.
func splitPageArg(arg string) (name, section string) {
	dot := strings.LastIndexByte(arg, '.')
	if dot <= 0 || dot == len(arg)-1 {
		return arg, ""
	}
	suffix := arg[dot+1:]
	if suffix[0] < '1' || suffix[0] > '9' {
		return arg, ""
	}
	return arg[:dot], suffix
}

// showPage runs the interactive viewer on a terminal; elsewhere it
// prints the page identity so the pipeline stays scriptable.
func showPage(cmd *cobra.Command, path string) error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return tui.Run(&tui.Ports{Page: pageService}, path)
	}

	sess, err := pageService.Open(context.Background(), path)
	if err != nil {
		return err
	}
	defer sess.Close()

	cmd.Printf("%s(%s)\n", sess.Page.Title, sess.Page.Section)
	return nil
}
