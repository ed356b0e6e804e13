package logger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig describes the rotating log file.
type FileConfig struct {
	Path       string // Log file path
	MaxSize    int    // Max size in megabytes before rotation
	MaxBackups int    // Max number of rotated files kept
	MaxAge     int    // Max age in days of rotated files
	Compress   bool   // Gzip rotated files
}

// DefaultFileConfig returns rotation limits for a log file at path.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	}
}

// EnableFile starts appending every log message to a rotating file.
// Any previously enabled file is closed first.
func EnableFile(cfg FileConfig) error {
	if cfg.Path == "" {
		return errors.New("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		_ = file.Close()
	}
	file = lj
	return nil
}

// Close detaches and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}
