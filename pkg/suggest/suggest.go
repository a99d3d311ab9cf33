// Package suggest ranks known command names by similarity to a name that did not resolve.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score required for a name to be suggested.
const threshold = 0.5

type candidate struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults names from candidates that are similar to target, most
// similar first. Ties are broken alphabetically.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	var ranked []candidate
	for _, name := range candidates {
		if score := calculateSimilarity(target, name); score > threshold {
			ranked = append(ranked, candidate{name: name, score: score})
		}
	}
	slices.SortFunc(ranked, func(a, b candidate) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	result := make([]string, 0, min(len(ranked), maxResults))
	for _, c := range ranked[:min(len(ranked), maxResults)] {
		result = append(result, c.name)
	}
	return result
}

// calculateSimilarity scores a against b between 0 and 1, ignoring case. A prefix scores 0.9,
// anything else is scored by edit distance.
func calculateSimilarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	switch {
	case a == b:
		return 1.0
	case strings.HasPrefix(b, a):
		return 0.9
	}
	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	return 1.0 - float64(levenshteinDistance(a, b))/float64(longest)
}

// levenshteinDistance counts the single-rune edits needed to turn a into b.
func levenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
