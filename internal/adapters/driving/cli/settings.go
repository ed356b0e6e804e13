package cli

import (
	"fmt"

	"github.com/custodia-labs/minigrep/internal/adapters/driven/config/file"
	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// Settings file keys.
const (
	keyVerbose       = "verbose"
	keyColor         = "color"
	keyLogFile       = "log.file"
	keyLogMaxSize    = "log.max_size_mb"
	keyLogMaxBackups = "log.max_backups"
	keyLogMaxAge     = "log.max_age_days"
	keyLogCompress   = "log.compress"
)

func loadSettings() error {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	return applySettings(store)
}

// applySettings resolves flag > settings file > default and configures logging.
func applySettings(store driven.ConfigStore) error {
	logger.SetVerbose(verbose || store.GetBool(keyVerbose))

	if colorMode == "" {
		colorMode = store.GetString(keyColor)
	}
	if colorMode == "" {
		colorMode = colorAuto
	}
	if !validColorMode(colorMode) {
		return fmt.Errorf("%w: color %q (want auto, always or never)", domain.ErrInvalidSetting, colorMode)
	}

	if path := store.GetString(keyLogFile); path != "" {
		if err := logger.EnableFile(logFileConfig(store, path)); err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
	}

	logger.Debug("Settings file: %s", store.Path())
	logger.Debug("Color: %s", colorMode)
	return nil
}

func logFileConfig(store driven.ConfigStore, path string) logger.FileConfig {
	cfg := logger.DefaultFileConfig(path)
	if v := store.GetInt(keyLogMaxSize); v > 0 {
		cfg.MaxSize = v
	}
	if v := store.GetInt(keyLogMaxBackups); v > 0 {
		cfg.MaxBackups = v
	}
	if v := store.GetInt(keyLogMaxAge); v > 0 {
		cfg.MaxAge = v
	}
	if _, ok := store.Get(keyLogCompress); ok {
		cfg.Compress = store.GetBool(keyLogCompress)
	}
	return cfg
}
