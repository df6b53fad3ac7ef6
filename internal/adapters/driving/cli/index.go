package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the manual page index",
	Long: `Walks the configured manpath, parses every manual page found and
replaces the stored index. Pages that fail to parse are skipped.`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if err := ensureIndexService(); err != nil {
		return err
	}

	count, err := indexService.Rebuild(context.Background())
	if err != nil {
		return fmt.Errorf("index rebuild failed: %w", err)
	}

	cmd.Printf("Indexed %d pages.\n", count)
	return nil
}
