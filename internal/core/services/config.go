package services

import (
	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// Ensure ConfigBuilder implements the interface.
var _ driving.ConfigBuilder = (*ConfigBuilder)(nil)

// Positions of the data tokens; args[0] is the program identity.
const (
	queryArg    = 1
	filePathArg = 2
)

// ConfigBuilder builds run configurations against a fixed environment.
type ConfigBuilder struct {
	env driven.Environment
}

// NewConfigBuilder creates a builder reading case sensitivity from env.
// A nil env behaves as an empty environment.
func NewConfigBuilder(env driven.Environment) *ConfigBuilder {
	return &ConfigBuilder{env: env}
}

// Build validates args and derives case sensitivity from the environment.
func (b *ConfigBuilder) Build(args []string) (domain.Config, error) {
	return BuildConfig(args, b.env)
}

// BuildConfig assembles a Config from command-line tokens and the environment.
//
// args[0] is the program identity and is never read. args[1] is the query and
// args[2] the file path; anything after that is ignored. Matching is
// case-insensitive when domain.CaseInsensitiveEnv is present in env.
func BuildConfig(args []string, env driven.Environment) (domain.Config, error) {
	logger.Section("Configuration")

	if len(args) <= filePathArg {
		logger.Debug("Got %d token(s), need query and file path", max(len(args)-1, 0))
		return domain.Config{}, domain.ErrInsufficientArguments
	}
	if extra := args[filePathArg+1:]; len(extra) > 0 {
		logger.Warn("Ignoring %d extra argument(s): %q", len(extra), extra)
	}

	caseSensitive := true
	if env != nil {
		if _, ok := env.LookupEnv(domain.CaseInsensitiveEnv); ok {
			caseSensitive = false
		}
	}

	cfg, err := domain.NewConfig(args[queryArg], args[filePathArg], caseSensitive)
	if err != nil {
		logger.Debug("Rejected arguments: %q", args[1:])
		return domain.Config{}, err
	}

	logger.Debug("Query: %q", cfg.Query())
	logger.Debug("File: %s", cfg.FilePath())
	logger.Debug("Case sensitive: %t", cfg.CaseSensitive())
	return cfg, nil
}
