// Package format renders markdown and formats values for terminal display.
package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
)

// Renderer renders markdown to terminal-formatted output at a fixed width.
type Renderer struct {
	tr    *glamour.TermRenderer
	width int
}

// NewRenderer creates a Renderer wrapping at width columns.
// Rendering falls back to the raw text if glamour cannot be initialized.
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = 100
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return &Renderer{width: width}
	}

	return &Renderer{tr: tr, width: width}
}

// Width returns the render width in columns.
func (r *Renderer) Width() int { return r.width }

// Markdown converts markdown text to terminal-formatted output.
func (r *Renderer) Markdown(text string) string {
	if r.tr == nil {
		return text
	}

	out, err := r.tr.Render(text)
	if err != nil {
		return text
	}

	return strings.TrimRight(out, "\n")
}

// Truncate returns s shortened to at most w display columns, with "..."
// appended if truncated. Newlines are replaced with spaces for single-line
// display.
func Truncate(s string, w int) string {
	s = strings.ReplaceAll(s, "\n", " ")

	if runewidth.StringWidth(s) <= w {
		return s
	}

	return runewidth.Truncate(s, w, "...")
}

// FmtTokens formats a token count for display, using k/M suffixes.
func FmtTokens(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
