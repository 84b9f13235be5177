// Package levenshtein implements edit-distance based string similarity.
//
// Besides the classic one-shot functions (Distance, Similarity,
// WeightedSimilarity) the package provides Incremental, a long-lived engine
// that keeps the dynamic-programming matrix between calls and recomputes
// only the rows invalidated by a query edit. This makes repeated scoring
// against an evolving query (live-typing search boxes) much cheaper than
// recomputing from scratch on every keystroke.
//
// All comparisons operate on Unicode scalar values (runes), so a multi-byte
// character counts as a single edit unit.
package levenshtein
