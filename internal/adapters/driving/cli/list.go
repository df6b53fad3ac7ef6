package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [section]",
	Short: "List indexed manual pages",
	Long: `Lists the pages in the local index, optionally restricted to a
single manual section.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if err := ensureIndexService(); err != nil {
		return err
	}

	section := ""
	if len(args) > 0 {
		section = args[0]
	}

	entries, err := indexService.List(context.Background(), section)
	if err != nil {
		return fmt.Errorf("listing pages: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No pages indexed. Run 'manview index' first.")
		return nil
	}

	for _, e := range entries {
		cmd.Printf("%s(%s)\t%s\n", e.Name, e.Section, e.Path)
	}
	return nil
}
