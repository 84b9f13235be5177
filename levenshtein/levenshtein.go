package levenshtein

// matrix is the dynamic-programming table of prefix-pair edit distances.
// matrix[i][j] holds the minimum number of insert/delete/substitute
// operations to transform the first i runes of a into the first j runes
// of b. Row 0 and column 0 are the identity ramp (0,1,2,...).
type matrix [][]int

// newMatrix builds the full table for a and b.
func newMatrix(a, b []rune) matrix {
	m := make(matrix, len(a)+1)
	for i := range m {
		m[i] = make([]int, len(b)+1)
	}
	for j := 0; j <= len(b); j++ {
		m[0][j] = j
	}
	for i := 1; i <= len(a); i++ {
		m.fillRow(i, a, b)
	}
	return m
}

// fillRow recomputes row i from row i-1. Column 0 is written first so the
// row is valid even when it was freshly appended.
func (m matrix) fillRow(i int, a, b []rune) {
	m[i][0] = i
	for j := 1; j <= len(b); j++ {
		cost := 1
		if a[i-1] == b[j-1] {
			cost = 0
		}
		m[i][j] = min(m[i-1][j]+1, m[i][j-1]+1, m[i-1][j-1]+cost)
	}
}

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-rune insertions, deletions and substitutions
// needed to transform one into the other.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	return newMatrix(ra, rb)[len(ra)][len(rb)]
}

// Similarity returns (maxlen-distance)/maxlen, where maxlen is the rune
// count of the longer string. The result is in [0,1], with 1.0 for equal
// non-empty strings. Two empty strings yield 0.0 by convention, not 1.0.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	m := newMatrix(ra, rb)
	return similarityFromMatrix(m, len(ra), len(rb))
}

func similarityFromMatrix(m matrix, lenA, lenB int) float64 {
	maxLen := max(lenA, lenB)
	if maxLen == 0 {
		return 0
	}
	return float64(maxLen-m[lenA][lenB]) / float64(maxLen)
}

// WeightedSimilarity scores a against b using run-length weighted edit
// operations: a contiguous run of k insertions or deletions costs log1p(k)
// instead of k, so one contiguous edit counts as one mistake. A substitution
// costs 2*ln(2) per substituted pair and matching runs cost nothing. The
// result is (maxlen-weightedCost)/maxlen.
//
// Unlike Similarity the result may be negative for very dissimilar strings
// (substitutions cost more than ln 2 per rune saved). Two empty strings
// yield 0.0.
func WeightedSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	m := newMatrix(ra, rb)
	return weightedSimilarityFromMatrix(m, ra, rb)
}
