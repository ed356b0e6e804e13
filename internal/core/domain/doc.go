// Package domain defines the core types for minigrep.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines:
//
//   - Config: the validated parameters of one search run
//   - Sentinel errors shared by services and adapters
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
