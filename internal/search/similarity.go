package search

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Similarity computes an edit-distance similarity between two strings,
// defined as 1 - levenshtein(a, b) / max(len(a), len(b)) over runes.
// Two empty strings are identical (1.0); exactly one empty string scores 0.
func Similarity(a, b string) float64 {
	lenA := len([]rune(a))
	lenB := len([]rune(b))

	if lenA == 0 && lenB == 0 {
		return 1.0
	}
	if lenA == 0 || lenB == 0 {
		return 0.0
	}

	longest := lenA
	if lenB > longest {
		longest = lenB
	}

	distance := fuzzy.LevenshteinDistance(a, b)
	return 1.0 - float64(distance)/float64(longest)
}
