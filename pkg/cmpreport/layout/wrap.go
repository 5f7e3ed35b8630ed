package layout

import (
	"strings"
	"unicode/utf8"
)

// DefaultWrapWidth is the line width used for note text.
const DefaultWrapWidth = 100

// Wrap wraps text at DefaultWrapWidth.
func Wrap(text string) string {
	return WrapText(text, DefaultWrapWidth)
}

// WrapText breaks text into lines of at most width runes without splitting
// words. Runs of whitespace, including newlines, collapse to a single space.
// A word longer than width is placed alone on its own line. A width below 1
// falls back to DefaultWrapWidth.
func WrapText(text string, width int) string {
	if width < 1 {
		width = DefaultWrapWidth
	}
	return strings.Join(WrapLines(text, width), "\n")
}

// WrapLines is WrapText returning the individual lines.
func WrapLines(text string, width int) []string {
	if width < 1 {
		width = DefaultWrapWidth
	}

	var (
		lines   []string
		line    strings.Builder
		lineLen int
	)
	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)
		if lineLen > 0 && lineLen+1+n > width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(word)
		lineLen += n
	}
	if lineLen > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// longestLine returns the rune length of the longest line of the wrapped
// text.
func longestLine(text string, width int) int {
	n := 0
	for _, l := range WrapLines(text, width) {
		n = max(n, utf8.RuneCountInString(l))
	}
	return n
}
