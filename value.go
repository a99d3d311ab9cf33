package commander

// ValueParser parses a T out of a single raw argument. A false return means the parser does not
// recognize the input; it is not an error, callers move on to the next parser in the list.
type ValueParser[T any] interface {
	Parse(value string) (T, bool)
}

// ParserFunc adapts an ordinary function to a [ValueParser].
type ParserFunc[T any] func(value string) (T, bool)

func (f ParserFunc[T]) Parse(value string) (T, bool) {
	return f(value)
}

// Any erases the result type of p so parsers of different types can be passed to the same
// accessor. Example usage:
//
//	slots := commander.GetAny(args, 0,
//	    commander.Any(commander.NewNumberParser()),
//	    commander.Any(commander.Constant("all")),
//	)
func Any[T any](p ValueParser[T]) ValueParser[any] {
	return ParserFunc[any](func(value string) (any, bool) {
		v, ok := p.Parse(value)
		if !ok {
			return nil, false
		}
		return v, true
	})
}
