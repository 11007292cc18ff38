// Package textutil provides display-width helpers for the status and
// message bars, where text (filenames, prompts) may contain wide runes
// or control characters the frame writer must not pass through.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			w = 1
		}
		width += w
	}
	return width
}

// TruncateToWidth cuts text so it occupies at most width terminal columns.
func TruncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}

	var builder strings.Builder
	current := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			w = 1
		}
		if current+w > width {
			break
		}
		builder.WriteRune(ru)
		current += w
	}
	return builder.String()
}

// SanitizeStatusText replaces control characters so user-controlled text
// cannot inject escape sequences into the status or message bar.
func SanitizeStatusText(text string) string {
	clean := true
	for _, r := range text {
		if r < 0x20 || r == 0x7f {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	for _, r := range text {
		switch {
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
