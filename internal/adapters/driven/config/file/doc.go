// Package file provides the TOML-backed driven.ConfigStore.
// Settings are read from config.toml in the minigrep config directory.
package file
