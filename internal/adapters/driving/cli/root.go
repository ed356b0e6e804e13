// Package cli implements the minigrep command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

var (
	verbose   bool
	colorMode string
	configDir string
)

var (
	configBuilder driving.ConfigBuilder
	searchService driving.SearchService
)

var rootCmd = &cobra.Command{
	Use:   "minigrep [flags] <query> <file>",
	Short: "Print the lines of a file that contain a query",
	Long: `Prints every line of <file> that contains <query> as a plain substring.

Matching is case-sensitive unless the CASE_INSENSITIVE environment
variable is set (to any value). Use -- before a query that starts with "-".`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "settings directory (default $XDG_CONFIG_HOME/minigrep)")
	rootCmd.Flags().StringVar(&colorMode, "color", "", "highlight matches: auto, always or never (default auto)")
}

// SetServices injects the core services used by the command.
func SetServices(builder driving.ConfigBuilder, search driving.SearchService) {
	configBuilder = builder
	searchService = search
}

// Execute runs the root command and releases the log file afterwards.
func Execute() error {
	defer func() { _ = logger.Close() }()
	rootCmd.Version = version
	return rootCmd.Execute()
}
