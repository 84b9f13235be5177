package simsearch

import (
	"container/heap"
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/simsearch-dev/simsearch/queue"
)

// Result pairs an item with its combined similarity score for one query.
type Result[V any] struct {
	Value V
	Score float64
}

// Engine ranks a collection of items against a query string by combining one
// or more similarity signals. Items and their per-item scorer state are
// owned by the engine for its lifetime; the stored collection keeps
// insertion order and is never reordered, ranking sorts a derived slice.
//
// An Engine is not safe for concurrent use without external
// synchronization: scoring may mutate per-item scorer state.
type Engine[V any] struct {
	scorers []Scorer[V]
	items   []V
	states  [][]any // states[i][j] is item i's slot for scorer j

	logger      *Logger
	metrics     MetricsCollector
	concurrency int
}

// New creates an empty engine. With no scorers configured every item
// scores 0.0.
func New[V any](optFns ...Option) *Engine[V] {
	o := options{
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		concurrency: 1,
	}
	for _, fn := range optFns {
		fn(&o)
	}

	return &Engine[V]{
		logger:      o.logger,
		metrics:     o.metrics,
		concurrency: o.concurrency,
	}
}

// AddScorer appends a similarity signal to the scoring pipeline.
//
// If items are already registered, every item's state vector is rebuilt so
// it stays structurally aligned with the pipeline.
func (e *Engine[V]) AddScorer(s Scorer[V]) error {
	if err := s.validate(); err != nil {
		return err
	}

	e.scorers = append(e.scorers, s)
	for i, v := range e.items {
		e.states[i] = e.newStateVector(v)
	}
	e.logger.LogAddScorer(len(e.scorers), s.weight, len(e.items))

	return nil
}

// newStateVector builds one state slot per scorer. Stateless scorers get a
// nil slot so the vector stays index-aligned with the scorer slice.
func (e *Engine[V]) newStateVector(v V) []any {
	states := make([]any, len(e.scorers))
	for j, s := range e.scorers {
		if s.newState != nil {
			states[j] = s.newState(v)
		}
	}
	return states
}

// Add registers a single item. Its state vector is created now, under the
// scoring pipeline currently in effect.
func (e *Engine[V]) Add(v V) {
	start := time.Now()
	e.items = append(e.items, v)
	e.states = append(e.states, e.newStateVector(v))
	e.metrics.RecordAdd(1, time.Since(start))
	e.logger.LogAdd(1, len(e.items))
}

// AddBatch registers items in order.
func (e *Engine[V]) AddBatch(vs []V) {
	start := time.Now()
	for _, v := range vs {
		e.items = append(e.items, v)
		e.states = append(e.states, e.newStateVector(v))
	}
	e.metrics.RecordAdd(len(vs), time.Since(start))
	e.logger.LogAdd(len(vs), len(e.items))
}

// Len returns the number of registered items.
func (e *Engine[V]) Len() int { return len(e.items) }

// Rank scores every registered item against query and returns all items
// sorted ascending by combined score: the least similar item comes first
// and the best match last. Callers wanting best-first should use TopK or
// read the slice from the end. The relative order of equal scores is
// unspecified.
//
// Scoring advances stateful scorers' per-item state as a side effect; this
// is what lets incremental scorers amortize work across successive queries.
func (e *Engine[V]) Rank(query string) []Result[V] {
	start := time.Now()

	results := e.scoreRange(query, 0, len(e.items), nil)
	sortByScore(results)

	e.metrics.RecordRank(len(results), time.Since(start))
	e.logger.LogRank(len(query), len(results))

	return results
}

// Search is Rank with the scores dropped; the ordering is identical.
func (e *Engine[V]) Search(query string) []V {
	return values(e.Rank(query))
}

// RankContext behaves like Rank but scores items across the number of
// goroutines configured with WithConcurrency, and returns early if ctx is
// cancelled. Each item's state is touched by exactly one goroutine, so no
// locking is needed. The mapping from item to score is identical to Rank;
// only the time taken differs.
func (e *Engine[V]) RankContext(ctx context.Context, query string) ([]Result[V], error) {
	start := time.Now()

	results := make([]Result[V], len(e.items))

	if e.concurrency <= 1 || len(e.items) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.scoreRange(query, 0, len(e.items), results)
	} else {
		g, gctx := errgroup.WithContext(ctx)
		chunk := (len(e.items) + e.concurrency - 1) / e.concurrency
		for lo := 0; lo < len(e.items); lo += chunk {
			lo, hi := lo, min(lo+chunk, len(e.items))
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				e.scoreRange(query, lo, hi, results)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	sortByScore(results)

	e.metrics.RecordRank(len(results), time.Since(start))
	e.logger.LogRank(len(query), len(results))

	return results, nil
}

// SearchContext is RankContext with the scores dropped.
func (e *Engine[V]) SearchContext(ctx context.Context, query string) ([]V, error) {
	results, err := e.RankContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return values(results), nil
}

// TopK returns the k best matches for query in descending score order (best
// match first). It keeps a k-sized heap instead of sorting the full result
// set. k <= 0 yields nil; k >= Len() is Rank reversed.
func (e *Engine[V]) TopK(query string, k int) []Result[V] {
	start := time.Now()

	if k <= 0 {
		return nil
	}

	// Min-heap of the k best seen so far; the worst kept score sits on top.
	pq := queue.NewMin(k)
	for i, v := range e.items {
		score := combined(e.scorers, e.states[i], v, query)
		switch {
		case pq.Len() < k:
			heap.Push(pq, &queue.PriorityQueueItem{Ref: i, Score: score})
		case score > pq.Top().Score:
			heap.Pop(pq)
			heap.Push(pq, &queue.PriorityQueueItem{Ref: i, Score: score})
		}
	}

	results := make([]Result[V], pq.Len())
	for n := pq.Len() - 1; n >= 0; n-- {
		item, _ := heap.Pop(pq).(*queue.PriorityQueueItem)
		results[n] = Result[V]{Value: e.items[item.Ref], Score: item.Score}
	}

	e.metrics.RecordRank(len(results), time.Since(start))
	e.logger.LogRank(len(query), len(results))

	return results
}

// scoreRange computes combined scores for items[lo:hi]. When dst is nil a
// fresh slice covering exactly that range is returned; otherwise scores are
// written into dst[lo:hi] and dst is returned.
func (e *Engine[V]) scoreRange(query string, lo, hi int, dst []Result[V]) []Result[V] {
	out, off := dst, 0
	if out == nil {
		out, off = make([]Result[V], hi-lo), -lo
	}
	for i := lo; i < hi; i++ {
		out[i+off] = Result[V]{
			Value: e.items[i],
			Score: combined(e.scorers, e.states[i], e.items[i], query),
		}
	}
	return out
}

func sortByScore[V any](results []Result[V]) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
}

func values[V any](results []Result[V]) []V {
	vs := make([]V, len(results))
	for i, r := range results {
		vs[i] = r.Value
	}
	return vs
}
