// Package env provides driven.Environment implementations.
package env

import (
	"os"

	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
)

// Ensure both adapters implement the interface.
var (
	_ driven.Environment = Process{}
	_ driven.Environment = Static(nil)
)

// Process reads variables from the process environment.
type Process struct{}

// LookupEnv returns the value of the named process environment variable.
func (Process) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Static is a fixed set of variables, isolated from the process environment.
type Static map[string]string

// LookupEnv returns the value of the named variable.
func (s Static) LookupEnv(name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}
