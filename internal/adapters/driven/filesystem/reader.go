// Package filesystem provides the local-disk driven.ContentProvider.
package filesystem

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.ContentProvider = (*Reader)(nil)

// Reader reads whole files from the local filesystem.
type Reader struct{}

// NewReader creates a new filesystem reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadToText reads the file at path into memory.
// Open and read errors keep their *fs.PathError; content that is not
// UTF-8 yields domain.ErrInvalidText.
func (r *Reader) ReadToText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read file %s: %w", path, domain.ErrInvalidText)
	}
	return string(data), nil
}
