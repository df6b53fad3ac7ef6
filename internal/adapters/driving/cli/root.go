// Package cli implements the manview command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/manview-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "manview [page...]",
	Short: "View manual pages in the terminal",
	Long: `Manview is a troff manual page viewer.

Pages are given either as file paths (gzip compression is handled
transparently) or as names looked up in the local index. Run
'manview index' once to build the index from your manpath.`,
	Args:         cobra.ArbitraryArgs,
	RunE:         runView,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the default services and runs the root command.
func Execute() error {
	if err := initServices(); err != nil {
		return err
	}
	defer closeServices()
	return rootCmd.Execute()
}
