package commander

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooleanParser(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		p := NewBooleanParser()
		tests := []struct {
			input string
			want  bool
			ok    bool
		}{
			{"YES", true, true},
			{"true", true, true},
			{"On", true, true},
			{"1", true, true},
			{"off", false, true},
			{"No", false, true},
			{"0", false, true},
			{"FALSE", false, true},
			{"maybe", false, false},
			{"", false, false},
		}
		for _, tt := range tests {
			got, ok := p.Parse(tt.input)
			assert.Equal(t, tt.ok, ok, "input %q", tt.input)
			assert.Equal(t, tt.want, got, "input %q", tt.input)
		}
	})
	t.Run("case sensitive", func(t *testing.T) {
		t.Parallel()
		p := NewBooleanParser(CaseSensitive())
		_, ok := p.Parse("YES")
		require.False(t, ok)
		v, ok := p.Parse("yes")
		require.True(t, ok)
		require.True(t, v)
	})
	t.Run("custom words", func(t *testing.T) {
		t.Parallel()
		p := NewBooleanParser(WithTrueWords("y"), WithFalseWords("n"))
		v, ok := p.Parse("Y")
		require.True(t, ok)
		require.True(t, v)
		_, ok = p.Parse("yes")
		require.False(t, ok)
	})
	t.Run("false words checked first", func(t *testing.T) {
		t.Parallel()
		p := NewBooleanParser(WithTrueWords("x"), WithFalseWords("x"))
		v, ok := p.Parse("x")
		require.True(t, ok)
		require.False(t, v)
	})
}

func TestNumberParser(t *testing.T) {
	t.Parallel()

	t.Run("clamp and round", func(t *testing.T) {
		t.Parallel()
		p := NewNumberParser(WithMin(0), WithMax(10), WithRound())
		v, ok := p.Parse("7.6")
		require.True(t, ok)
		require.Equal(t, 8.0, v)
		v, ok = p.Parse("-3")
		require.True(t, ok)
		require.Equal(t, 0.0, v)
		v, ok = p.Parse("42")
		require.True(t, ok)
		require.Equal(t, 10.0, v)
		_, ok = p.Parse("abc")
		require.False(t, ok)
	})
	t.Run("abs before clamp", func(t *testing.T) {
		t.Parallel()
		p := NewNumberParser(WithMin(0), WithMax(10), WithAbs())
		v, ok := p.Parse("-7")
		require.True(t, ok)
		require.Equal(t, 7.0, v)
	})
	t.Run("round after clamp", func(t *testing.T) {
		t.Parallel()
		p := NewNumberParser(WithMax(2.4), WithRound())
		v, ok := p.Parse("9")
		require.True(t, ok)
		require.Equal(t, 2.0, v)
	})
	t.Run("halves round up", func(t *testing.T) {
		t.Parallel()
		p := NewNumberParser(WithRound())
		v, _ := p.Parse("2.5")
		assert.Equal(t, 3.0, v)
		v, _ = p.Parse("-2.5")
		assert.Equal(t, -2.0, v)
	})
	t.Run("unbounded", func(t *testing.T) {
		t.Parallel()
		p := NewNumberParser()
		v, ok := p.Parse(" -1e3 ")
		require.True(t, ok)
		require.Equal(t, -1000.0, v)
		v, ok = p.Parse("-Infinity")
		require.True(t, ok)
		require.True(t, math.IsInf(v, -1))
		v, ok = p.Parse("1e400")
		require.True(t, ok)
		require.True(t, math.IsInf(v, 1))
	})
	t.Run("leading number", func(t *testing.T) {
		t.Parallel()
		p := NewNumberParser()
		tests := []struct {
			input string
			want  float64
		}{
			{"12abc", 12},
			{"10m", 10},
			{"5px", 5},
			{"1_000", 1},
			{"3.5.1", 3.5},
			{".5s", 0.5},
			{"7.", 7},
			{"2e3x", 2000},
			{"4e", 4},
			{"0x10", 0},
			{"  -8 users", -8},
		}
		for _, tt := range tests {
			v, ok := p.Parse(tt.input)
			require.True(t, ok, "input %q", tt.input)
			assert.Equal(t, tt.want, v, "input %q", tt.input)
		}
	})
	t.Run("leading number is clamped", func(t *testing.T) {
		t.Parallel()
		p := NewNumberParser(WithMax(60), WithRound())
		v, ok := p.Parse("90m")
		require.True(t, ok)
		require.Equal(t, 60.0, v)
	})
	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		p := NewNumberParser()
		for _, input := range []string{"", "   ", "NaN", "one", "inf", "infinity", "Inf", "-", ".", "e5", "_1"} {
			_, ok := p.Parse(input)
			assert.False(t, ok, "input %q", input)
		}
	})
}

func TestStringParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format StringFormat
		input  string
		want   string
	}{
		{Keep, "hELLO", "hELLO"},
		{Upper, "hELLO", "HELLO"},
		{Lower, "hELLO", "hello"},
		{Capitalize, "hELLO", "HELLO"},
		{Capitalize, "hello world", "Hello world"},
		{LowerCapitalize, "hELLO", "Hello"},
		{LowerCapitalize, "éCOLE", "École"},
		{LowerCapitalize, "", ""},
		{Title, "hello big world", "Hello Big World"},
		{Kebab, "HelloWorld", "hello-world"},
		{Snake, "HelloWorld", "hello_world"},
		{Camel, "hello_world", "helloWorld"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.format.String()+"/"+tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := NewStringParser(WithFormat(tt.format)).Parse(tt.input)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
	t.Run("format func", func(t *testing.T) {
		t.Parallel()
		p := NewStringParser(WithFormatFunc(func(s string) string {
			return strings.Repeat(s, 2)
		}))
		got, ok := p.Parse("ab")
		require.True(t, ok)
		require.Equal(t, "abab", got)
	})
}

func TestConstantParser(t *testing.T) {
	t.Parallel()

	p := Constant(-1.0)
	for _, input := range []string{"", "abc", "5"} {
		v, ok := p.Parse(input)
		require.True(t, ok)
		require.Equal(t, -1.0, v)
	}
}

func TestTimeParser(t *testing.T) {
	t.Parallel()

	p := NewTimeParser(WithLocation(time.UTC))
	v, ok := p.Parse("2024-03-01")
	require.True(t, ok)
	require.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), v)

	_, ok = p.Parse("not a date")
	require.False(t, ok)
	_, ok = p.Parse("  ")
	require.False(t, ok)
}
