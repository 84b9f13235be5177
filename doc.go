// Package simsearch ranks in-memory collections against a query string by
// similarity, re-ranking cheaply as the query is edited rune-by-rune (as in
// live-typing search boxes).
//
// An Engine combines one or more weighted similarity signals; an item's
// combined score is the maximum of its weighted signal scores, so the single
// best piece of evidence wins and a strong title match is not diluted by a
// mediocre description match. Signals can be stateless functions or carry
// per-item state, such as the incremental edit-distance matrix from the
// levenshtein subpackage.
//
// # Quick Start
//
//	engine := simsearch.New[string]()
//	if err := engine.AddScorer(simsearch.WeightedLev(func(s string) string { return s })); err != nil {
//	    log.Fatal(err)
//	}
//	engine.AddBatch([]string{"hello", "world", "foo", "bar"})
//
//	for _, r := range engine.TopK("hallo", 3) {
//	    fmt.Printf("%.3f %s\n", r.Score, r.Value)
//	}
//
// # Multi-field scoring
//
// Attach one scorer per field, each with its own weight. Stateful scorers
// build their per-item state at registration time:
//
//	engine := simsearch.New[Book]()
//	engine.AddScorer(simsearch.IncrementalLev(func(b Book) string { return b.Title }))
//	engine.AddScorer(simsearch.WeightedStatefulScore(0.8,
//	    func(b Book) any { return levenshtein.NewIncremental("", b.Author) },
//	    func(state any, _ Book, q string) float64 {
//	        return state.(*levenshtein.Incremental).WeightedSimilarity(q)
//	    },
//	))
//
// # Ordering
//
// Rank and Search return results sorted ascending by score, least similar
// first; the best match is the last element. TopK returns the k best
// matches, best first.
//
// # Concurrency
//
// Engines are single-threaded by default. RankContext scores independent
// items in parallel when WithConcurrency is set; per-item state stays
// private to one goroutine per call, so no locking is involved. Concurrent
// calls on the same engine still require external synchronization.
package simsearch
