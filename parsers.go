package commander

import (
	"errors"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	_ ValueParser[bool]      = (*BooleanParser)(nil)
	_ ValueParser[float64]   = (*NumberParser)(nil)
	_ ValueParser[string]    = (*StringParser)(nil)
	_ ValueParser[time.Time] = (*TimeParser)(nil)
)

// BooleanParser parses boolean words such as "yes", "off" or "1".
type BooleanParser struct {
	trueWords     []string
	falseWords    []string
	caseSensitive bool
}

// BooleanOption configures a [BooleanParser].
type BooleanOption func(*BooleanParser)

// WithTrueWords replaces the words that parse to true.
func WithTrueWords(words ...string) BooleanOption {
	return func(p *BooleanParser) {
		p.trueWords = slices.Clone(words)
	}
}

// WithFalseWords replaces the words that parse to false.
func WithFalseWords(words ...string) BooleanOption {
	return func(p *BooleanParser) {
		p.falseWords = slices.Clone(words)
	}
}

// CaseSensitive disables lower-casing of the input before it is compared to the word lists.
func CaseSensitive() BooleanOption {
	return func(p *BooleanParser) {
		p.caseSensitive = true
	}
}

// NewBooleanParser returns a parser recognizing true, on, 1, yes and false, off, 0, no, ignoring
// case unless configured otherwise.
func NewBooleanParser(opts ...BooleanOption) ValueParser[bool] {
	p := &BooleanParser{
		trueWords:  []string{"true", "on", "1", "yes"},
		falseWords: []string{"false", "off", "0", "no"},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *BooleanParser) Parse(value string) (bool, bool) {
	s := value
	if !p.caseSensitive {
		s = strings.ToLower(s)
	}
	// False words win when a word is listed twice.
	if slices.Contains(p.falseWords, s) {
		return false, true
	}
	if slices.Contains(p.trueWords, s) {
		return true, true
	}
	return false, false
}

// NumberParser parses the number at the start of its input, ignoring whatever follows. The result
// is optionally made absolute, clamped and rounded, in that order.
type NumberParser struct {
	min, max float64
	abs      bool
	round    bool
}

// NumberOption configures a [NumberParser].
type NumberOption func(*NumberParser)

// WithMin sets the lower clamp bound.
func WithMin(n float64) NumberOption {
	return func(p *NumberParser) {
		p.min = n
	}
}

// WithMax sets the upper clamp bound.
func WithMax(n float64) NumberOption {
	return func(p *NumberParser) {
		p.max = n
	}
}

// WithAbs takes the absolute value before clamping.
func WithAbs() NumberOption {
	return func(p *NumberParser) {
		p.abs = true
	}
}

// WithRound rounds the clamped value to the nearest integer, halves rounding up.
func WithRound() NumberOption {
	return func(p *NumberParser) {
		p.round = true
	}
}

// NewNumberParser returns an unbounded number parser.
func NewNumberParser(opts ...NumberOption) ValueParser[float64] {
	p := &NumberParser{
		min: math.Inf(-1),
		max: math.Inf(1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// numberPrefix matches the leading number of an input. Anything after it is ignored, so "10m"
// parses as 10.
var numberPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)

func (p *NumberParser) Parse(value string) (float64, bool) {
	lead := numberPrefix.FindString(strings.TrimLeftFunc(value, unicode.IsSpace))
	if lead == "" {
		return 0, false
	}
	// Out of range inputs come back as ±Inf or 0 along with ErrRange.
	n, err := strconv.ParseFloat(lead, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if p.abs {
		n = math.Abs(n)
	}
	n = math.Min(math.Max(n, p.min), p.max)
	if p.round {
		n = math.Floor(n + 0.5)
	}
	return n, true
}

// StringFormat selects how a [StringParser] transforms its input.
type StringFormat int

const (
	Keep            StringFormat = iota // Keep returns the input unchanged
	Upper                               // Upper converts the input to upper case
	Lower                               // Lower converts the input to lower case
	Capitalize                          // Capitalize upper-cases the first character and keeps the rest
	LowerCapitalize                     // LowerCapitalize upper-cases the first character and lower-cases the rest
	Title                               // Title upper-cases the first letter of every word
	Kebab                               // Kebab converts the input to kebab-case
	Snake                               // Snake converts the input to snake_case
	Camel                               // Camel converts the input to lowerCamelCase
)

func (f StringFormat) String() string {
	switch f {
	case Keep:
		return "keep"
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	case Capitalize:
		return "capitalize"
	case LowerCapitalize:
		return "lowerCapitalize"
	case Title:
		return "title"
	case Kebab:
		return "kebab"
	case Snake:
		return "snake"
	case Camel:
		return "camel"
	default:
		return "unknown"
	}
}

// StringParser returns its input, formatted. It always matches.
type StringParser struct {
	format StringFormat
	fn     func(string) string
}

// StringOption configures a [StringParser].
type StringOption func(*StringParser)

// WithFormat selects one of the built-in formats.
func WithFormat(format StringFormat) StringOption {
	return func(p *StringParser) {
		p.format = format
		p.fn = nil
	}
}

// WithFormatFunc formats the input with fn instead of a built-in format.
func WithFormatFunc(fn func(string) string) StringOption {
	return func(p *StringParser) {
		p.fn = fn
	}
}

// NewStringParser returns a parser that keeps its input as is unless a format is configured.
func NewStringParser(opts ...StringOption) ValueParser[string] {
	p := &StringParser{format: Keep}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *StringParser) Parse(value string) (string, bool) {
	if p.fn != nil {
		return p.fn(value), true
	}
	switch p.format {
	case Upper:
		return strings.ToUpper(value), true
	case Lower:
		return strings.ToLower(value), true
	case Capitalize:
		first, rest := splitFirst(value)
		return strings.ToUpper(first) + rest, true
	case LowerCapitalize:
		first, rest := splitFirst(value)
		return strings.ToUpper(first) + strings.ToLower(rest), true
	case Title:
		// A Caser is stateful, so one is built per call.
		return cases.Title(language.Und).String(value), true
	case Kebab:
		return strcase.ToKebab(value), true
	case Snake:
		return strcase.ToSnake(value), true
	case Camel:
		return strcase.ToLowerCamel(value), true
	default:
		return value, true
	}
}

func splitFirst(s string) (string, string) {
	if s == "" {
		return "", ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size], s[size:]
}

// ConstantParser ignores its input and always returns the same value. It is typically the last
// parser in a list, acting as a fallback.
type ConstantParser[T any] struct {
	value T
}

// Constant returns a parser that always yields v.
func Constant[T any](v T) ValueParser[T] {
	return &ConstantParser[T]{value: v}
}

func (p *ConstantParser[T]) Parse(string) (T, bool) {
	return p.value, true
}

// TimeParser parses dates and times in most common layouts, for example "2024-03-01",
// "1 March 2024" or "03/01/2024 10:30".
type TimeParser struct {
	loc *time.Location
}

// TimeOption configures a [TimeParser].
type TimeOption func(*TimeParser)

// WithLocation sets the location used for inputs without a zone. Defaults to [time.Local].
func WithLocation(loc *time.Location) TimeOption {
	return func(p *TimeParser) {
		if loc != nil {
			p.loc = loc
		}
	}
}

// NewTimeParser returns a parser for free-form dates.
func NewTimeParser(opts ...TimeOption) ValueParser[time.Time] {
	p := &TimeParser{loc: time.Local}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *TimeParser) Parse(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(value, p.loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
