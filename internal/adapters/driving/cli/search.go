package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minigrep/internal/logger"
)

func runSearch(cmd *cobra.Command, args []string) error {
	if configBuilder == nil || searchService == nil {
		return errors.New("search service not configured")
	}

	// Arguments are checked before the settings file is read, so a broken
	// config.toml never hides a usage error. Only --verbose applies this early.
	logger.SetVerbose(verbose)

	// The builder expects the program identity ahead of the data tokens.
	cfg, err := configBuilder.Build(append([]string{cmd.Root().Name()}, args...))
	if err != nil {
		return fmt.Errorf("problem parsing arguments: %w", err)
	}

	if err := loadSettings(); err != nil {
		return err
	}

	results, err := searchService.Search(cfg)
	if err != nil {
		return fmt.Errorf("application error: %w", err)
	}

	out := cmd.OutOrStdout()
	return writeResults(out, results, newHighlighter(out, colorMode, cfg))
}

// writeResults prints each result on its own line, in order.
func writeResults(w io.Writer, results []string, hl *highlighter) error {
	for _, line := range results {
		if _, err := fmt.Fprintln(w, hl.Render(line)); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
	}
	return nil
}
