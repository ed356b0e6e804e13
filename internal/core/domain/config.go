package domain

// CaseInsensitiveEnv is the environment variable that, when present,
// switches the search to case-insensitive matching. Its value is ignored.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// Config holds the parameters of a single search run.
// It is immutable once constructed; the zero value is not a valid Config.
type Config struct {
	query         string
	filePath      string
	caseSensitive bool
}

// NewConfig validates and creates a Config.
// Returns ErrInsufficientArguments if query or filePath is empty.
func NewConfig(query, filePath string, caseSensitive bool) (Config, error) {
	if query == "" || filePath == "" {
		return Config{}, ErrInsufficientArguments
	}
	return Config{
		query:         query,
		filePath:      filePath,
		caseSensitive: caseSensitive,
	}, nil
}

// Query returns the substring being searched for.
func (c Config) Query() string {
	return c.query
}

// FilePath returns the path of the file to search.
func (c Config) FilePath() string {
	return c.filePath
}

// CaseSensitive reports whether matching respects letter case.
func (c Config) CaseSensitive() bool {
	return c.caseSensitive
}
