// Package logger provides diagnostic logging for minigrep.
// When verbose mode is enabled via the --verbose flag, messages are
// printed to stderr to show how the run was configured. When a log file
// is configured, every message is also appended there, verbose or not.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	file    io.WriteCloser
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug logs a diagnostic message.
func Debug(format string, args ...any) {
	write("[DEBUG] "+format+"\n", args...)
}

// Section logs a section header.
func Section(name string) {
	write("\n=== %s ===\n", name)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	write("[INFO] "+format+"\n", args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	write("[WARN] "+format+"\n", args...)
}

// write holds the exclusive lock so concurrent callers never interleave on a writer.
func write(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose && file == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if verbose {
		_, _ = io.WriteString(output, msg)
	}
	if file != nil {
		_, _ = io.WriteString(file, msg)
	}
}
