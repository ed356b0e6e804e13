// Package services implements the driving port interfaces.
// Services contain the core logic and call out to driven ports
// (adapters) for environment and file access.
//
// Services are synchronous and hold no mutable state.
package services
