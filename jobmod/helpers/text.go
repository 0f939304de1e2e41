package helpers

import (
	"strings"
)

func DedupeStrings(in []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range in {
		if !seen[v] {
			out = append(out, v)
			seen[v] = true
		}
	}
	return out
}

// TokenizeText splits free text into a set of lower-cased tokens, on
// whitespace only. Punctuation is intentionally kept attached to tokens:
// near-duplicate detection compares postings written by the same author, so
// aggressive normalization would only inflate similarity.
func TokenizeText(raw string) map[string]bool {
	out := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(raw)) {
		out[tok] = true
	}
	return out
}

// JaccardSimilarity computes |A ∩ B| / |A ∪ B| over two token sets.
//
// Returns 0.0 when both sets are empty.
func JaccardSimilarity(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}
	intersection := 0
	for tok := range a {
		if b[tok] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
