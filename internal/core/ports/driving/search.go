package driving

import (
	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// SearchService provides line search over a single file.
type SearchService interface {
	// Search reads the configured file and returns every line containing the query,
	// in file order. A read failure is returned unchanged with no partial results.
	Search(cfg domain.Config) ([]string, error)
}
