package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSimilar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		candidates []string
		maxResults int
		expected   []string
	}{
		{
			name:       "swapped letters",
			target:     "remvoe",
			candidates: []string{"remove", "rm", "del", "register", "list"},
			maxResults: 3,
			expected:   []string{"remove"},
		},
		{
			name:       "prefix of identifier",
			target:     "he",
			candidates: []string{"help", "h", "?", "history", "exit"},
			maxResults: 3,
			expected:   []string{"help"},
		},
		{
			name:       "aliases ranked with identifiers",
			target:     "bam",
			candidates: []string{"ban", "b", "kick", "bat"},
			maxResults: 3,
			expected:   []string{"ban", "bat"},
		},
		{
			name:       "ties sorted by name",
			target:     "kik",
			candidates: []string{"kiks", "kika", "kick"},
			maxResults: 3,
			expected:   []string{"kika", "kiks", "kick"},
		},
		{
			name:       "limited to max results",
			target:     "ki",
			candidates: []string{"kiss", "kill", "kick"},
			maxResults: 2,
			expected:   []string{"kick", "kill"},
		},
		{
			name:       "ignores case",
			target:     "LIST",
			candidates: []string{"ls", "lost", "list"},
			maxResults: 3,
			expected:   []string{"list", "lost"},
		},
		{
			name:       "empty target",
			target:     "",
			candidates: []string{"ban", "kick"},
			maxResults: 2,
			expected:   []string{},
		},
		{
			name:       "no commands",
			target:     "ban",
			candidates: nil,
			maxResults: 2,
			expected:   []string{},
		},
		{
			name:       "zero max results",
			target:     "ban",
			candidates: []string{"ban"},
			maxResults: 0,
			expected:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindSimilar(tt.target, tt.candidates, tt.maxResults)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCalculateSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{name: "identical", a: "ban", b: "ban", expected: 1.0},
		{name: "different case", a: "Ban", b: "BAN", expected: 1.0},
		{name: "prefix", a: "rem", b: "remove", expected: 0.9},
		{name: "short alias", a: "remove", b: "rm", expected: 1.0 - 4.0/6.0},
		{name: "swapped letters", a: "lsit", b: "list", expected: 0.5},
		{name: "multi-byte runes", a: "café", b: "cafe", expected: 0.75},
		{name: "empty candidate", a: "ban", b: "", expected: 0.0},
		{name: "both empty", a: "", b: "", expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calculateSimilarity(tt.a, tt.b)
			assert.InDelta(t, tt.expected, result, 0.001, "similarity mismatch for %q and %q", tt.a, tt.b)
		})
	}
}

func TestLevenshteinDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{name: "identical", a: "deregister", b: "deregister", expected: 0},
		{name: "substitution", a: "ban", b: "bat", expected: 1},
		{name: "insertion", a: "kick", b: "kicks", expected: 1},
		{name: "deletion", a: "remove", b: "remov", expected: 1},
		{name: "swapped letters", a: "lsit", b: "list", expected: 2},
		{name: "alias against identifier", a: "quit", b: "exit", expected: 2},
		{name: "empty first", a: "", b: "help", expected: 4},
		{name: "empty second", a: "help", b: "", expected: 4},
		{name: "both empty", a: "", b: "", expected: 0},
		{name: "accented rune", a: "café", b: "cafe", expected: 1},
		{name: "accent in the middle", a: "naïve", b: "naive", expected: 1},
		{name: "four byte runes", a: "👍", b: "👎", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := levenshteinDistance(tt.a, tt.b)
			assert.Equal(t, tt.expected, result, "distance mismatch for %q and %q", tt.a, tt.b)
		})
	}
}
