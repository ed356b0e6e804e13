package driving

import (
	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// ConfigBuilder turns command-line tokens into a validated run configuration.
type ConfigBuilder interface {
	// Build validates args (program identity first, then query and file path)
	// and derives case sensitivity from the environment.
	Build(args []string) (domain.Config, error)
}
