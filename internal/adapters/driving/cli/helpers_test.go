package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minigrep/internal/adapters/driven/env"
	"github.com/custodia-labs/minigrep/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/minigrep/internal/core/services"
	"github.com/custodia-labs/minigrep/internal/logger"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nDuck tape.\nTrust me.\n"

// setupTestServices wires real services over an isolated environment and
// restores package state when the test ends.
func setupTestServices(t *testing.T, e env.Static) {
	t.Helper()
	oldBuilder, oldSearch := configBuilder, searchService
	SetServices(services.NewConfigBuilder(e), services.NewSearchService(filesystem.NewReader()))

	t.Cleanup(func() {
		configBuilder, searchService = oldBuilder, oldSearch
		verbose, colorMode, configDir = false, "", ""
		if f := rootCmd.Flags().Lookup("version"); f != nil {
			_ = f.Value.Set("false")
		}
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
		_ = logger.Close()
	})
}

// execute runs the root command with an empty settings directory unless
// args already name one.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(append([]string{"--config", t.TempDir()}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func writePoem(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte(poem), 0644))
	return path
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))
	return dir
}
