package commander

import (
	"slices"
	"strings"
)

// Arguments holds the positional arguments passed to a command and is consumed by the accessor
// functions [Get], [Shift], [Pop], [ShiftIf] and [Join], and their "Any" counterparts.
//
// Every accessor takes an ordered list of parsers. The single-result accessors return the first
// value a parser recognizes. The "Any" accessors return one [Option] per parser instead, so the
// caller can tell which parser matched:
//
//	amount, ok := commander.Shift(args, commander.NewNumberParser(), commander.Constant(-1.0))
//
//	slots := commander.ShiftAny(args,
//	    commander.Any(commander.NewNumberParser()),
//	    commander.Any(commander.Constant("all")),
//	)
//	switch i, v := commander.Which(slots); i {
//	case 0:
//	    // v is a float64
//	case 1:
//	    // no number was given
//	}
//
// Arguments is not safe for concurrent use. The commander builds a new one per execution.
type Arguments struct {
	args []string
}

// NewArguments returns Arguments over a copy of args; args itself is never modified.
func NewArguments(args []string) *Arguments {
	a := &Arguments{args: []string{}}
	if len(args) > 0 {
		a.args = slices.Clone(args)
	}
	return a
}

// Size returns the number of arguments that have not been consumed.
func (a *Arguments) Size() int {
	return len(a.args)
}

// Args returns the remaining arguments. The slice is not a copy.
func (a *Arguments) Args() []string {
	return a.args
}

// Describe returns a descriptor of the remaining arguments.
func (a *Arguments) Describe() ArgumentDescriptor {
	return ArgumentDescriptor{Args: slices.Clone(a.args)}
}

// String formats the remaining arguments as { a, b, c }.
func (a *Arguments) String() string {
	return formatArgs(a.args)
}

func (a *Arguments) at(index int) (string, bool) {
	if index < 0 || index >= len(a.args) {
		return "", false
	}
	return a.args[index], true
}

func (a *Arguments) shift() (string, bool) {
	if len(a.args) == 0 {
		return "", false
	}
	v := a.args[0]
	a.args = a.args[1:]
	return v, true
}

func (a *Arguments) pop() (string, bool) {
	if len(a.args) == 0 {
		return "", false
	}
	last := len(a.args) - 1
	v := a.args[last]
	a.args = a.args[:last]
	return v, true
}

// ArgumentDescriptor is a printable snapshot of a list of arguments.
type ArgumentDescriptor struct {
	Args []string
}

func (d ArgumentDescriptor) String() string {
	return formatArgs(d.Args)
}

func formatArgs(args []string) string {
	return "{ " + strings.Join(args, ", ") + " }"
}

// Get parses the argument at index. It returns false if the index is out of range or no parser
// recognizes the argument.
func Get[T any](a *Arguments, index int, parsers ...ValueParser[T]) (T, bool) {
	v, ok := a.at(index)
	return parseFirst(v, ok, parsers)
}

// GetAny is like [Get] but reports which parser matched.
func GetAny[T any](a *Arguments, index int, parsers ...ValueParser[T]) []Option[T] {
	v, ok := a.at(index)
	return parseAny(v, ok, parsers)
}

// Shift removes the first argument and parses it. The argument is consumed even if no parser
// recognizes it.
func Shift[T any](a *Arguments, parsers ...ValueParser[T]) (T, bool) {
	v, ok := a.shift()
	return parseFirst(v, ok, parsers)
}

// ShiftAny is like [Shift] but reports which parser matched.
func ShiftAny[T any](a *Arguments, parsers ...ValueParser[T]) []Option[T] {
	v, ok := a.shift()
	return parseAny(v, ok, parsers)
}

// ShiftIf parses the first argument and removes it only if a parser recognized it.
func ShiftIf[T any](a *Arguments, parsers ...ValueParser[T]) (T, bool) {
	v, ok := a.at(0)
	result, ok := parseFirst(v, ok, parsers)
	if ok {
		a.shift()
	}
	return result, ok
}

// ShiftIfAny is like [ShiftIf] but reports which parser matched.
func ShiftIfAny[T any](a *Arguments, parsers ...ValueParser[T]) []Option[T] {
	v, ok := a.at(0)
	results := parseAny(v, ok, parsers)
	if i, _ := Which(results); i >= 0 {
		a.shift()
	}
	return results
}

// Pop removes the last argument and parses it. The argument is consumed even if no parser
// recognizes it.
func Pop[T any](a *Arguments, parsers ...ValueParser[T]) (T, bool) {
	v, ok := a.pop()
	return parseFirst(v, ok, parsers)
}

// PopAny is like [Pop] but reports which parser matched.
func PopAny[T any](a *Arguments, parsers ...ValueParser[T]) []Option[T] {
	v, ok := a.pop()
	return parseAny(v, ok, parsers)
}

// Join joins all remaining arguments with separator and parses the result. The arguments are not
// consumed. With no arguments left the parser sees the empty string.
func Join[T any](a *Arguments, separator string, parser ValueParser[T]) (T, bool) {
	return parseFirst(strings.Join(a.args, separator), true, []ValueParser[T]{parser})
}

// JoinAny is like [Join] but accepts several parsers and reports which one matched.
func JoinAny[T any](a *Arguments, separator string, parsers ...ValueParser[T]) []Option[T] {
	return parseAny(strings.Join(a.args, separator), true, parsers)
}

func parseFirst[T any](value string, exists bool, parsers []ValueParser[T]) (T, bool) {
	var zero T
	if !exists {
		return zero, false
	}
	for _, p := range parsers {
		if v, ok := p.Parse(value); ok {
			return v, true
		}
	}
	return zero, false
}

func parseAny[T any](value string, exists bool, parsers []ValueParser[T]) []Option[T] {
	results := Nones[T](len(parsers))
	if !exists {
		return results
	}
	for i, p := range parsers {
		if v, ok := p.Parse(value); ok {
			results[i] = Some(v)
			break
		}
	}
	return results
}
