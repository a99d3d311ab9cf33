// Package textutil formats help text for terminals.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits text into lines no wider than width, breaking on whitespace. Words longer than width
// get a line of their own. Width is measured in runes.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
		n     int
	)
	for _, word := range strings.Fields(text) {
		wn := utf8.RuneCountInString(word)
		if n > 0 && n+1+wn > width {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(word)
		n += wn
	}
	if n > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Indent returns n spaces.
func Indent(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
