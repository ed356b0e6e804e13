package services

import (
	"errors"
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService searches the file named by a Config.
type SearchService struct {
	content driven.ContentProvider
}

// NewSearchService creates a new search service reading files through content.
func NewSearchService(content driven.ContentProvider) *SearchService {
	return &SearchService{content: content}
}

// Search reads the configured file and returns its matching lines.
func (s *SearchService) Search(cfg domain.Config) ([]string, error) {
	if s.content == nil {
		return nil, errors.New("content provider not configured")
	}

	logger.Section("Search Execution")

	content, err := s.content.ReadToText(cfg.FilePath())
	if err != nil {
		logger.Warn("Read failed: %v", err)
		return nil, err
	}
	logger.Debug("Read %d bytes from %s", len(content), cfg.FilePath())

	results := Search(cfg.Query(), content, cfg.CaseSensitive())
	logger.Info("Matching lines: %d", len(results))
	return results, nil
}

// Search returns every line of content that contains query, in order.
//
// Lines end at "\n", with an immediately preceding "\r" dropped; a final
// terminator does not produce an empty trailing line. The returned strings
// are substrings of content. An empty query matches every line.
func Search(query, content string, caseSensitive bool) []string {
	if caseSensitive {
		return searchCaseSensitive(query, content)
	}
	return searchCaseInsensitive(query, content)
}

func searchCaseSensitive(query, content string) []string {
	results := make([]string, 0)
	for line := range lines(content) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

func searchCaseInsensitive(query, content string) []string {
	// A Caser carries state, so each call gets its own. Final-sigma handling
	// is off so a letter lowers the same way wherever it sits in a string.
	lower := cases.Lower(language.Und, cases.HandleFinalSigma(false))
	query = lower.String(query)

	results := make([]string, 0)
	for line := range lines(content) {
		if strings.Contains(lower.String(line), query) {
			results = append(results, line)
		}
	}
	return results
}

// lines yields the lines of content without their terminators.
func lines(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(content) {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}
