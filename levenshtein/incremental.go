package levenshtein

// Incremental pairs a fixed data string with an edit-distance matrix that is
// kept consistent with an evolving query. Updating the query only recomputes
// the matrix rows beyond the leading prefix shared with the previous query,
// so extending a query one rune at a time costs O(len(data)) per call
// instead of a full O(len(query)*len(data)) rebuild.
//
// The scoring methods update the matrix before scoring; mutating the
// receiver is an explicit part of their contract. An Incremental must not be
// used from multiple goroutines concurrently.
type Incremental struct {
	query []rune
	data  []rune
	m     matrix
}

// NewIncremental builds the full matrix for the initial (query, data) pair.
// The initial query is typically empty.
func NewIncremental(query, data string) *Incremental {
	q, d := []rune(query), []rune(data)
	return &Incremental{query: q, data: d, m: newMatrix(q, d)}
}

// Query returns the query string the matrix currently reflects.
func (inc *Incremental) Query() string { return string(inc.query) }

// Data returns the data string this engine scores against.
func (inc *Incremental) Data() string { return string(inc.data) }

// commonPrefixLen returns the number of identical leading runes shared by
// the stored query and newQuery.
func (inc *Incremental) commonPrefixLen(newQuery []rune) int {
	n := min(len(inc.query), len(newQuery))
	for i := 0; i < n; i++ {
		if inc.query[i] != newQuery[i] {
			return i
		}
	}
	return n
}

// update brings the matrix in line with newQuery. Rows covering the shared
// leading prefix depend only on that prefix and the unchanged data string,
// so they are left untouched; every row after it is recomputed. With no
// shared prefix this degenerates to a full rebuild.
func (inc *Incremental) update(newQuery []rune) {
	k := inc.commonPrefixLen(newQuery)

	if len(newQuery) > len(inc.query) {
		for i := len(inc.query); i < len(newQuery); i++ {
			inc.m = append(inc.m, make([]int, len(inc.data)+1))
		}
	} else {
		inc.m = inc.m[:len(newQuery)+1]
	}
	inc.query = newQuery

	for i := k + 1; i <= len(newQuery); i++ {
		inc.m.fillRow(i, inc.query, inc.data)
	}
}

// Distance updates the matrix for newQuery and returns the edit distance
// between newQuery and the data string.
func (inc *Incremental) Distance(newQuery string) int {
	inc.update([]rune(newQuery))
	return inc.m[len(inc.query)][len(inc.data)]
}

// Similarity updates the matrix for newQuery and returns the similarity
// ratio between newQuery and the data string, equal to what
// Similarity(newQuery, data) would compute from scratch.
func (inc *Incremental) Similarity(newQuery string) float64 {
	inc.update([]rune(newQuery))
	return similarityFromMatrix(inc.m, len(inc.query), len(inc.data))
}

// WeightedSimilarity updates the matrix for newQuery and returns the
// run-length weighted similarity, equal to what
// WeightedSimilarity(newQuery, data) would compute from scratch.
func (inc *Incremental) WeightedSimilarity(newQuery string) float64 {
	inc.update([]rune(newQuery))
	return weightedSimilarityFromMatrix(inc.m, inc.query, inc.data)
}
