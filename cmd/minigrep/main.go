// Command minigrep prints the lines of a file that contain a query string.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/minigrep/internal/adapters/driven/env"
	"github.com/custodia-labs/minigrep/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/minigrep/internal/adapters/driving/cli"
	"github.com/custodia-labs/minigrep/internal/core/services"
)

func main() {
	cli.SetServices(
		services.NewConfigBuilder(env.Process{}),
		services.NewSearchService(filesystem.NewReader()),
	)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "minigrep: %v\n", err)
		os.Exit(1)
	}
}
