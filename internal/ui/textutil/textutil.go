// Package textutil provides unicode-aware text helpers for TUI rendering.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is appended to truncated text.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// SingleLine collapses every run of whitespace, newlines included, into one space.
// Multi-line answers typed into the add form are shown this way in the list.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
