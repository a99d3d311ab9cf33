package commander

import (
	"strings"
	"unicode/utf8"
)

// Line is a raw input line split into a command name and its arguments.
type Line struct {
	// Name is the command identifier or alias, the first word after the prefix.
	Name string
	// Args are the remaining words, split on single spaces.
	Args []string
	// Input is the line exactly as it was given.
	Input string
}

// LineParser splits prefixed input lines into a [Line].
//
// The prefix must be followed by exactly one separator character before the command name, and
// that character is dropped whatever it is. With the prefix "bot" the line "bot ban alice" names
// the command "ban"; with the empty prefix "/ban alice" does.
type LineParser struct {
	prefix string
}

// NewLineParser returns a LineParser for the given prefix.
func NewLineParser(prefix string) *LineParser {
	return &LineParser{prefix: prefix}
}

// SetPrefix changes the command prefix.
func (p *LineParser) SetPrefix(prefix string) {
	p.prefix = prefix
}

// Prefix returns the command prefix.
func (p *LineParser) Prefix() string {
	return p.prefix
}

// Parse splits input into a command name and arguments. It returns false if input is blank, does
// not start with the prefix, or has no command name after the prefix and separator.
func (p *LineParser) Parse(input string) (Line, bool) {
	if input == "" {
		return Line{}, false
	}
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || !strings.HasPrefix(trimmed, p.prefix) {
		return Line{}, false
	}
	rest := trimmed[len(p.prefix):]
	if rest == "" {
		return Line{}, false
	}
	_, size := utf8.DecodeRuneInString(rest)
	rest = rest[size:]
	if rest == "" {
		return Line{}, false
	}

	split := strings.Split(rest, " ")
	name := split[0]
	if name == "" {
		return Line{}, false
	}
	return Line{
		Name:  name,
		Args:  split[1:],
		Input: input,
	}, true
}
