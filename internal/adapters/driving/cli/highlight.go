package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

func validColorMode(mode string) bool {
	switch mode {
	case colorAuto, colorAlways, colorNever:
		return true
	}
	return false
}

// highlighter styles occurrences of the query inside a matched line.
// A nil highlighter renders lines unchanged.
type highlighter struct {
	style         lipgloss.Style
	query         string
	caseSensitive bool
	lower         cases.Caser
}

// newHighlighter returns nil when highlighting is disabled for w.
func newHighlighter(w io.Writer, mode string, cfg domain.Config) *highlighter {
	switch mode {
	case colorNever:
		return nil
	case colorAlways:
	default:
		if !isTerminal(w) {
			return nil
		}
	}

	r := lipgloss.NewRenderer(w)
	if mode == colorAlways {
		r.SetColorProfile(termenv.ANSI)
	}

	h := &highlighter{
		style: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1")).
			TabWidth(lipgloss.NoTabConversion),
		query:         cfg.Query(),
		caseSensitive: cfg.CaseSensitive(),
	}
	if !h.caseSensitive {
		h.lower = cases.Lower(language.Und, cases.HandleFinalSigma(false))
		h.query = h.lower.String(h.query)
	}
	return h
}

// Render wraps each occurrence of the query in line with the highlight style.
// The text of the line is never altered. An occurrence whose bounds fall
// inside the lowered form of a single rune cannot be mapped back to the
// line, and the line is then returned as-is.
func (h *highlighter) Render(line string) string {
	if h == nil || h.query == "" {
		return line
	}

	haystack, offsets := line, []int(nil)
	if !h.caseSensitive {
		haystack, offsets = h.fold(line)
	}
	original := func(i int) int {
		if offsets == nil {
			return i
		}
		return offsets[i]
	}

	var b strings.Builder
	written, from := 0, 0
	for {
		i := strings.Index(haystack[from:], h.query)
		if i < 0 {
			break
		}
		i += from
		end := i + len(h.query)
		lo, hi := original(i), original(end)
		if lo < 0 || hi < 0 {
			return line
		}
		b.WriteString(line[written:lo])
		b.WriteString(h.style.Render(line[lo:hi]))
		written, from = hi, end
	}
	b.WriteString(line[written:])
	return b.String()
}

// fold lowers line one rune at a time. offsets[i] is the byte offset in line
// of the rune whose lowered form starts at haystack byte i, or -1 when byte i
// lies inside a lowered rune; offsets[len(haystack)] is len(line).
func (h *highlighter) fold(line string) (string, []int) {
	var b strings.Builder
	offsets := make([]int, 0, len(line)+1)
	for i, r := range line {
		lowered := h.lower.String(string(r))
		offsets = append(offsets, i)
		for range len(lowered) - 1 {
			offsets = append(offsets, -1)
		}
		b.WriteString(lowered)
	}
	return b.String(), append(offsets, len(line))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
