package simsearch

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/simsearch-dev/simsearch/fold"
	"github.com/simsearch-dev/simsearch/levenshtein"
)

// Stock scorers over a text field extracted from the item. For items that
// are plain strings, pass the identity function.

// Lev scores items by plain Levenshtein similarity between the query and
// the extracted text.
func Lev[V any](text func(V) string) Scorer[V] {
	return Score(func(v V, query string) float64 {
		return levenshtein.Similarity(query, text(v))
	})
}

// WeightedLev scores items by run-length weighted edit similarity, which
// rewards contiguous edits over the same number of scattered ones. It
// produces exactly the scores of IncrementalLev, without per-item state.
func WeightedLev[V any](text func(V) string) Scorer[V] {
	return Score(func(v V, query string) float64 {
		return levenshtein.WeightedSimilarity(query, text(v))
	})
}

// FoldedLev is Lev with case and diacritics ignored on both sides.
func FoldedLev[V any](text func(V) string) Scorer[V] {
	return Score(func(v V, query string) float64 {
		return levenshtein.Similarity(fold.Fold(query), fold.Fold(text(v)))
	})
}

// IncrementalLev is the stateful variant of WeightedLev: each item carries
// an incremental edit-distance matrix seeded against its text, so
// successive queries sharing a leading prefix with the previous one (live
// typing) only recompute the invalidated rows.
func IncrementalLev[V any](text func(V) string) Scorer[V] {
	return StatefulScore(
		func(v V) any { return levenshtein.NewIncremental("", text(v)) },
		func(state any, _ V, query string) float64 {
			inc, _ := state.(*levenshtein.Incremental)
			return inc.WeightedSimilarity(query)
		},
	)
}

// Fuzzy scores 1.0 when the query runes appear in order in the extracted
// text, ignoring case and diacritics, and 0.0 otherwise.
func Fuzzy[V any](text func(V) string) Scorer[V] {
	return Score(func(v V, query string) float64 {
		if fuzzy.MatchNormalizedFold(query, text(v)) {
			return 1
		}
		return 0
	})
}
