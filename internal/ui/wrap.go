package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// WrapText wraps s to the given display width and returns the resulting
// lines. Explicit newlines are honored first, then each segment is
// word-wrapped; words wider than the width are hard-broken so no line ever
// exceeds it. A segment always contributes at least one line, so an empty
// string wraps to a single empty line and the caller can count lines to
// size a table row.
//
// Width must be positive; the layout engine clamps its body width to
// MinBodyWidth before calling.
func WrapText(s string, width int) []string {
	var lines []string
	for _, segment := range strings.Split(s, "\n") {
		wrapped := ansi.Wrap(segment, width, "")
		lines = append(lines, strings.Split(wrapped, "\n")...)
	}
	return lines
}

// LineWidth reports the display width of s in terminal cells. Wide runes
// (CJK, emoji) count as two cells.
func LineWidth(s string) int {
	return runewidth.StringWidth(s)
}
